package cssselect

import (
	"testing"

	"github.com/vladinator1000/cssselect/internal/css_ast"
)

func mustParse(t *testing.T, source string, options ParserOptions) SelectorList {
	t.Helper()
	log := NewDeferLog()
	list, ok := Parse(log, "<test>", source, options)
	if !ok {
		t.Fatalf("expected %q to parse, got errors: %v", source, log.Done())
	}
	return list
}

func TestRoundTripParseSerialize(t *testing.T) {
	cases := []string{
		"div.foo#bar",
		"a > b + c ~ d",
		":is(.a, .b):not(.c)",
		"[data-foo=\"bar\" i]",
		"p:before",
	}
	for _, c := range cases {
		list := mustParse(t, c, ParserOptions{})
		got := SerializeSelectorList(list, PrinterOptions{})
		if got != c {
			t.Fatalf("expected %q to round-trip, got %q", c, got)
		}
	}
}

func TestDownlevelThenSerializeOldSafari(t *testing.T) {
	oldSafari := &Browsers{Safari: &Version{Major: 5, Minor: 1}}
	list := mustParse(t, ":is(.a, .b)", ParserOptions{})
	prefixes := Downlevel(&list, oldSafari, nil)
	if prefixes.IsEmpty() {
		t.Fatal("expected old Safari to need a vendor prefix for :is()")
	}
	got := SerializeSelectorList(list, PrinterOptions{Targets: oldSafari, VendorPrefix: prefixes})
	if got != ":-webkit-any(.a, .b)" {
		t.Fatalf("expected downleveled :is() to serialize as -webkit-any, got %q", got)
	}
}

func TestIsCompatibleModernTargets(t *testing.T) {
	modern := &Browsers{Chrome: &Version{Major: 120}}
	list := mustParse(t, "a:hover:focus-visible", ParserOptions{})
	if !IsCompatible(list, modern, nil) {
		t.Fatal("expected a plain modern selector to be compatible with modern Chrome")
	}
}

func TestIsCompatibleCustomPseudoFails(t *testing.T) {
	modern := &Browsers{Chrome: &Version{Major: 120}}
	list := mustParse(t, ":some-future-pseudo", ParserOptions{ErrorRecovery: true})
	if IsCompatible(list, modern, nil) {
		t.Fatal("expected an unrecognized pseudo-class to never report compatible")
	}
}

func TestIsEquivalentAcrossVendorPrefix(t *testing.T) {
	a := mustParse(t, ":fullscreen", ParserOptions{})
	b := mustParse(t, ":-webkit-full-screen", ParserOptions{})
	if !IsEquivalent(a, b) {
		t.Fatal("expected :fullscreen and its -webkit- spelling to be equivalent")
	}
}

func TestIsUnusedAfterParse(t *testing.T) {
	list := mustParse(t, ".foo", ParserOptions{})
	if !IsUnused(list, map[string]bool{"foo": true}, false) {
		t.Fatal("expected a selector referencing only an unused class to be unused")
	}
}

func TestGetPrefixAfterParse(t *testing.T) {
	list := mustParse(t, ":-webkit-full-screen", ParserOptions{})
	if p := GetPrefix(list); p != css_ast.VendorWebKit {
		t.Fatalf("expected -webkit- prefix, got %v", p)
	}
}

func TestSerializeWithNestingContext(t *testing.T) {
	oldTargets := &Browsers{Safari: &Version{Major: 9}}
	parent := mustParse(t, ".parent", ParserOptions{})
	ctx := &StyleContext{ParentSelectors: &parent}
	child := mustParse(t, "&.child", ParserOptions{Nesting: true})
	got := SerializeSelectorList(child, PrinterOptions{Targets: oldTargets, Context: ctx})
	if got != ".parent.child" {
		t.Fatalf("expected nesting to splice against the supplied StyleContext, got %q", got)
	}
}

func TestSerializeSelectorSingleBranch(t *testing.T) {
	list := mustParse(t, "a, b", ParserOptions{})
	got := SerializeSelector(list.Selectors[0], PrinterOptions{})
	if got != "a" {
		t.Fatalf("expected SerializeSelector to emit only the first branch, got %q", got)
	}
}
