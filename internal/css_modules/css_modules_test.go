package css_modules

import "testing"

func TestDefaultRenamerPattern(t *testing.T) {
	r := DefaultRenamer{Pattern: "[local]_scoped"}
	if got := r.RenameLocal("button"); got != "button_scoped" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultRenamerSuffix(t *testing.T) {
	r := DefaultRenamer{Suffix: "a1b2"}
	if got := r.RenameLocal("button"); got != "button_a1b2" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultRenamerIdentity(t *testing.T) {
	r := DefaultRenamer{}
	if got := r.RenameLocal("button"); got != "button" {
		t.Fatalf("got %q", got)
	}
}
