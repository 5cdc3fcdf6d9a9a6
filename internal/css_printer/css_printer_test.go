package css_printer

import (
	"testing"

	"github.com/vladinator1000/cssselect/internal/compat"
	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/css_modules"
	"github.com/vladinator1000/cssselect/internal/css_parser"
	"github.com/vladinator1000/cssselect/internal/logger"
)

func mustParse(t *testing.T, source string, options css_parser.Options) css_ast.SelectorList {
	t.Helper()
	log := logger.NewDeferLog()
	list, ok := css_parser.Parse(log, "<test>", source, options)
	if !ok {
		t.Fatalf("expected %q to parse, got errors: %v", source, log.Done())
	}
	return list
}

func serialize(t *testing.T, source string, parseOptions css_parser.Options, printOptions Options) string {
	t.Helper()
	list := mustParse(t, source, parseOptions)
	return SerializeSelectorList(list, printOptions)
}

func TestSerializeUniversalTypeElision(t *testing.T) {
	got := serialize(t, "*.foo", css_parser.Options{}, Options{})
	if got != ".foo" {
		t.Fatalf("expected universal type to elide before a class, got %q", got)
	}
}

func TestSerializeUniversalTypeKeptWhenSoleComponent(t *testing.T) {
	got := serialize(t, "*", css_parser.Options{}, Options{})
	if got != "*" {
		t.Fatalf("expected bare universal type to survive, got %q", got)
	}
}

func TestSerializeUniversalTypeKeptAfterNamespace(t *testing.T) {
	got := serialize(t, "svg|*", css_parser.Options{}, Options{})
	if got != "svg|*" {
		t.Fatalf("expected namespaced universal type to survive, got %q", got)
	}
}

func TestSerializeHasLeadingCombinatorRoundTrips(t *testing.T) {
	got := serialize(t, ":has(> .child)", css_parser.Options{}, Options{})
	if got != ":has(> .child)" {
		t.Fatalf("expected :has(> .child) to keep its explicit leading combinator, got %q", got)
	}
}

func TestSerializeScopeElisionInsideHas(t *testing.T) {
	got := serialize(t, ":has(:scope > .child)", css_parser.Options{}, Options{})
	if got != ":has(> .child)" {
		t.Fatalf("expected an explicit leading :scope to be elided inside :has(), got %q", got)
	}
}

func TestSerializeAttributeShortestFormMinify(t *testing.T) {
	got := serialize(t, `[data-foo="bar"]`, css_parser.Options{}, Options{Minify: true})
	if got != `[data-foo=bar]` {
		t.Fatalf("expected bare ident form when minifying, got %q", got)
	}
}

func TestSerializeAttributeQuotedWhenNotMinifying(t *testing.T) {
	got := serialize(t, `[data-foo="bar"]`, css_parser.Options{}, Options{})
	if got != `[data-foo="bar"]` {
		t.Fatalf("expected quoted form when not minifying, got %q", got)
	}
}

func TestSerializeAttributeQuotedWhenNotValidIdent(t *testing.T) {
	got := serialize(t, `[data-foo="1 bar"]`, css_parser.Options{}, Options{Minify: true})
	if got != `[data-foo="1 bar"]` {
		t.Fatalf("expected quoted form for a non-ident value even when minifying, got %q", got)
	}
}

func TestSerializeAttributeCaseSensitivitySuffix(t *testing.T) {
	got := serialize(t, `[data-foo="bar" i]`, css_parser.Options{}, Options{})
	if got != `[data-foo="bar" i]` {
		t.Fatalf("expected case-insensitivity flag to round-trip, got %q", got)
	}
}

func TestSerializeIsCollapsesSingleBranch(t *testing.T) {
	got := serialize(t, ":is(.foo)", css_parser.Options{}, Options{})
	if got != ".foo" {
		t.Fatalf("expected single type-selector-free branch to collapse, got %q", got)
	}
}

func TestSerializeIsKeepsMultipleBranches(t *testing.T) {
	got := serialize(t, ":is(.foo, .bar)", css_parser.Options{}, Options{})
	if got != ":is(.foo, .bar)" {
		t.Fatalf("expected multi-branch :is() to stay wrapped, got %q", got)
	}
}

func TestSerializeIsWithVendorPrefixOverride(t *testing.T) {
	got := serialize(t, ":is(.foo)", css_parser.Options{}, Options{VendorPrefix: css_ast.VendorWebKit})
	if got != ":-webkit-any(.foo)" {
		t.Fatalf("expected vendor override to force -webkit-any() spelling even for a collapsible branch, got %q", got)
	}
}

func TestSerializeNegationSplitsListWhenUnsupported(t *testing.T) {
	oldSafari := &compat.Browsers{Safari: &compat.Version{Major: 5, Minor: 1}}
	got := serialize(t, ":not(.a, .b)", css_parser.Options{}, Options{Targets: oldSafari})
	if got != ":not(.a):not(.b)" {
		t.Fatalf("expected :not() list to split for an engine lacking CSS-Not-Selector-List, got %q", got)
	}
}

func TestSerializeNegationKeepsListWhenSupported(t *testing.T) {
	modern := &compat.Browsers{Chrome: &compat.Version{Major: 120}}
	got := serialize(t, ":not(.a, .b)", css_parser.Options{}, Options{Targets: modern})
	if got != ":not(.a, .b)" {
		t.Fatalf("expected :not() list to stay combined for a modern engine, got %q", got)
	}
}

func TestSerializeNestingNoContextFallsBackToScope(t *testing.T) {
	oldTargets := &compat.Browsers{Safari: &compat.Version{Major: 9}}
	got := serialize(t, "&.foo", css_parser.Options{Nesting: true}, Options{Targets: oldTargets})
	if got != ":scope.foo" {
		t.Fatalf("expected '&' with no StyleContext to become :scope, got %q", got)
	}
}

func TestSerializeNestingSplicesSingleSimpleParent(t *testing.T) {
	oldTargets := &compat.Browsers{Safari: &compat.Version{Major: 9}}
	parent := mustParse(t, ".parent", css_parser.Options{})
	ctx := &StyleContext{ParentSelectors: &parent}
	got := serialize(t, "&.child", css_parser.Options{Nesting: true}, Options{Targets: oldTargets, Context: ctx})
	if got != ".parent.child" {
		t.Fatalf("expected '&' to splice a single simple-parent branch inline, got %q", got)
	}
}

func TestSerializeNestingWrapsMultiBranchParent(t *testing.T) {
	oldTargets := &compat.Browsers{Safari: &compat.Version{Major: 9}}
	parent := mustParse(t, ".a, .b", css_parser.Options{})
	ctx := &StyleContext{ParentSelectors: &parent}
	got := serialize(t, "&.child", css_parser.Options{Nesting: true}, Options{Targets: oldTargets, Context: ctx})
	if got != ":is(.a, .b).child" {
		t.Fatalf("expected '&' to wrap a multi-branch parent in :is(...), got %q", got)
	}
}

func TestSerializeNestingSwapsBeforeTypeSelector(t *testing.T) {
	oldTargets := &compat.Browsers{Safari: &compat.Version{Major: 9}}
	parent := mustParse(t, ".parent", css_parser.Options{})
	ctx := &StyleContext{ParentSelectors: &parent}
	got := serialize(t, "&div", css_parser.Options{Nesting: true}, Options{Targets: oldTargets, Context: ctx})
	if got != "div.parent" {
		t.Fatalf("expected '&div' to print as 'div.parent', got %q", got)
	}
}

func TestSerializeNestingLeavesLiteralAmpersandWhenSupported(t *testing.T) {
	modern := &compat.Browsers{Chrome: &compat.Version{Major: 120}}
	got := serialize(t, "&.child", css_parser.Options{Nesting: true}, Options{Targets: modern})
	if got != "&.child" {
		t.Fatalf("expected '&' to print literally when CSS nesting is supported, got %q", got)
	}
}

func TestSerializeUserActionPseudoRemap(t *testing.T) {
	remap := &UserActionPseudoClassRemap{Hover: "is-hover"}
	got := serialize(t, "a:hover", css_parser.Options{}, Options{PseudoClasses: remap})
	if got != "a.is-hover" {
		t.Fatalf("expected :hover to remap to .is-hover, got %q", got)
	}
}

func TestSerializeGlobalSuppressesRenaming(t *testing.T) {
	renamer := css_modules.DefaultRenamer{Suffix: "x1y2"}
	got := serialize(t, ":global(.foo) .bar", css_parser.Options{CSSModules: &css_parser.CSSModulesConfig{}}, Options{CSSModule: renamer})
	if got != ".foo .bar_x1y2" {
		t.Fatalf("expected :global() content unrenamed but following content renamed, got %q", got)
	}
}

func TestSerializeLocalStillRenames(t *testing.T) {
	renamer := css_modules.DefaultRenamer{Suffix: "x1y2"}
	got := serialize(t, ":local(.foo)", css_parser.Options{CSSModules: &css_parser.CSSModulesConfig{}}, Options{CSSModule: renamer})
	if got != ".foo_x1y2" {
		t.Fatalf("expected :local() content to still be renamed, got %q", got)
	}
}

func TestSerializeLegacySingleColonPseudoElement(t *testing.T) {
	got := serialize(t, "p::before", css_parser.Options{}, Options{})
	if got != "p:before" {
		t.Fatalf("expected ::before to serialize with a legacy single colon, got %q", got)
	}
}

func TestSerializeLangList(t *testing.T) {
	got := serialize(t, ":lang(en, fr-FR)", css_parser.Options{}, Options{})
	if got != ":lang(en, fr-FR)" {
		t.Fatalf("expected :lang() list to round-trip, got %q", got)
	}
}

func TestSerializeNamespacedAttribute(t *testing.T) {
	got := serialize(t, "[svg|href]", css_parser.Options{}, Options{})
	if got != "[svg|href]" {
		t.Fatalf("expected namespaced attribute to round-trip, got %q", got)
	}
}

func TestSerializeCommaList(t *testing.T) {
	got := serialize(t, "a, b", css_parser.Options{}, Options{})
	if got != "a, b" {
		t.Fatalf("expected comma-list to space out when not minifying, got %q", got)
	}
	got = serialize(t, "a, b", css_parser.Options{}, Options{Minify: true})
	if got != "a,b" {
		t.Fatalf("expected comma-list to pack tight when minifying, got %q", got)
	}
}

func TestSerializeCombinatorsRoundTrip(t *testing.T) {
	cases := []string{"a b", "a > b", "a + b", "a ~ b"}
	for _, c := range cases {
		got := serialize(t, c, css_parser.Options{}, Options{})
		if got != c {
			t.Fatalf("expected %q to round-trip, got %q", c, got)
		}
	}
}
