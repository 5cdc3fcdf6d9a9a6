// Package sourcetest is a small diffing helper for table-driven tests,
// trimmed down from the teacher's own
// internal/test: no filesystem probing, no terminal color detection,
// just string equality with a readable failure message.
package sourcetest

import (
	"fmt"
	"strings"
	"testing"
)

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("%v != %v", a, b)
	}
}

func AssertEqualWithDiff(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		stringA := fmt.Sprintf("%v", a)
		stringB := fmt.Sprintf("%v", b)
		if strings.Contains(stringA, "\n") || strings.Contains(stringB, "\n") {
			t.Fatal(Diff(stringB, stringA))
		} else {
			t.Fatalf("%s != %s", stringA, stringB)
		}
	}
}
