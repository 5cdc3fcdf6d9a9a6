package css_parser

import (
	"testing"

	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/logger"
)

func parseOk(t *testing.T, source string, options Options) css_ast.SelectorList {
	t.Helper()
	log := logger.NewDeferLog()
	list, ok := Parse(log, "<test>", source, options)
	if !ok {
		t.Fatalf("expected %q to parse, got errors: %v", source, log.Done())
	}
	return list
}

func parseFail(t *testing.T, source string, options Options) {
	t.Helper()
	log := logger.NewDeferLog()
	if _, ok := Parse(log, "<test>", source, options); ok {
		t.Fatalf("expected %q to fail to parse", source)
	}
}

func TestParseSimpleCompound(t *testing.T) {
	list := parseOk(t, "div.foo#bar", Options{})
	if len(list.Selectors) != 1 {
		t.Fatalf("expected 1 selector, got %d", len(list.Selectors))
	}
	groups := list.Selectors[0].ParseOrderGroups()
	if len(groups) != 1 {
		t.Fatalf("expected a single compound group, got %d", len(groups))
	}
	comps := groups[0].Components
	if len(comps) != 3 {
		t.Fatalf("expected type+class+id, got %d components", len(comps))
	}
	if comps[0].Kind != css_ast.KindLocalName || comps[0].TypeSelector.Name != "div" {
		t.Fatalf("expected local name 'div', got %+v", comps[0])
	}
	if comps[1].Kind != css_ast.KindClass || comps[1].Name != "foo" {
		t.Fatalf("expected class 'foo', got %+v", comps[1])
	}
	if comps[2].Kind != css_ast.KindID || comps[2].Name != "bar" {
		t.Fatalf("expected id 'bar', got %+v", comps[2])
	}
}

func TestParseCombinators(t *testing.T) {
	cases := []struct {
		source     string
		combinator css_ast.Combinator
	}{
		{"a b", css_ast.Descendant},
		{"a > b", css_ast.Child},
		{"a + b", css_ast.NextSibling},
		{"a ~ b", css_ast.LaterSibling},
	}
	for _, c := range cases {
		list := parseOk(t, c.source, Options{})
		groups := list.Selectors[0].ParseOrderGroups()
		if len(groups) != 2 {
			t.Fatalf("%q: expected 2 groups, got %d", c.source, len(groups))
		}
		if !groups[1].HasPrecedingCombinator || groups[1].PrecedingCombinator != c.combinator {
			t.Fatalf("%q: expected combinator %v, got %+v", c.source, c.combinator, groups[1])
		}
	}
}

func TestParseCommaSeparatedList(t *testing.T) {
	list := parseOk(t, "a, b, c", Options{})
	if len(list.Selectors) != 3 {
		t.Fatalf("expected 3 selectors, got %d", len(list.Selectors))
	}
}

func TestParseAttributeSelector(t *testing.T) {
	list := parseOk(t, `[data-foo="bar" i]`, Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindAttributeInNoNamespace {
		t.Fatalf("expected AttributeInNoNamespace, got %v", comp.Kind)
	}
	if comp.Attribute.Operator != css_ast.AttrEqual || comp.Attribute.Value != "bar" {
		t.Fatalf("unexpected attribute payload: %+v", comp.Attribute)
	}
	if comp.Attribute.CaseSensitivity != css_ast.CaseInsensitive {
		t.Fatalf("expected case-insensitive flag, got %v", comp.Attribute.CaseSensitivity)
	}
}

func TestParseAttributeExistsNoNamespace(t *testing.T) {
	list := parseOk(t, `[disabled]`, Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindAttributeInNoNamespaceExists {
		t.Fatalf("expected AttributeInNoNamespaceExists, got %v", comp.Kind)
	}
}

func TestParseNamespacedAttribute(t *testing.T) {
	list := parseOk(t, `[svg|href]`, Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindAttributeOther {
		t.Fatalf("expected AttributeOther for namespaced attribute, got %v", comp.Kind)
	}
	if comp.Attribute.Name.Prefix == nil || *comp.Attribute.Name.Prefix != "svg" {
		t.Fatalf("expected namespace prefix 'svg', got %+v", comp.Attribute.Name)
	}
}

func TestParseIsNotWhereHas(t *testing.T) {
	list := parseOk(t, ":is(.a, .b):not(.c):where(.d):has(> .e)", Options{})
	comps := list.Selectors[0].Components
	if len(comps) != 4 {
		t.Fatalf("expected 4 pseudo components, got %d", len(comps))
	}
	if comps[0].Kind != css_ast.KindIs || len(comps[0].Selectors.Selectors) != 2 {
		t.Fatalf("unexpected :is() parse: %+v", comps[0])
	}
	if comps[1].Kind != css_ast.KindNegation {
		t.Fatalf("unexpected :not() parse: %+v", comps[1])
	}
	if comps[2].Kind != css_ast.KindWhere {
		t.Fatalf("unexpected :where() parse: %+v", comps[2])
	}
	if comps[3].Kind != css_ast.KindHas {
		t.Fatalf("unexpected :has() parse: %+v", comps[3])
	}
	hasGroups := comps[3].Selectors.Selectors[0].ParseOrderGroups()
	if len(hasGroups) != 1 || !hasGroups[0].HasPrecedingCombinator {
		t.Fatalf("expected :has() relative-selector leading combinator, got %+v", hasGroups)
	}
}

func TestParseNthChildOfSelector(t *testing.T) {
	list := parseOk(t, ":nth-child(2n+1 of .foo)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindNthChild {
		t.Fatalf("expected NthChild, got %v", comp.Kind)
	}
	if comp.Nth.A != 2 || comp.Nth.B != 1 {
		t.Fatalf("expected An+B 2n+1, got %+v", comp.Nth)
	}
	if comp.Nth.Of == nil || len(comp.Nth.Of.Selectors) != 1 {
		t.Fatalf("expected an 'of' selector list, got %+v", comp.Nth.Of)
	}
}

func TestParseNthOddEven(t *testing.T) {
	list := parseOk(t, ":nth-child(odd)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Nth.A != 2 || comp.Nth.B != 1 {
		t.Fatalf("expected 'odd' to parse as 2n+1, got %+v", comp.Nth)
	}

	list = parseOk(t, ":nth-of-type(even)", Options{})
	comp = list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindNthOfType || comp.Nth.A != 2 || comp.Nth.B != 0 {
		t.Fatalf("expected 'even' to parse as 2n, got %+v", comp)
	}
}

func TestParseLangList(t *testing.T) {
	list := parseOk(t, ":lang(en, fr-FR)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindNonTSPseudoClass || comp.PseudoClass.Kind != css_ast.PseudoLang {
		t.Fatalf("expected PseudoLang, got %+v", comp)
	}
	if len(comp.PseudoClass.Languages) != 2 || comp.PseudoClass.Languages[0] != "en" {
		t.Fatalf("unexpected languages: %+v", comp.PseudoClass.Languages)
	}
}

func TestParseDir(t *testing.T) {
	list := parseOk(t, ":dir(rtl)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.PseudoClass.Kind != css_ast.PseudoDir || comp.PseudoClass.Direction != css_ast.Rtl {
		t.Fatalf("expected PseudoDir(rtl), got %+v", comp.PseudoClass)
	}
}

func TestParseLegacySingleColonPseudoElement(t *testing.T) {
	list := parseOk(t, "p:before", Options{})
	comps := list.Selectors[0].Components
	if comps[1].Kind != css_ast.KindPseudoElement || comps[1].PseudoElement.Kind != css_ast.PseudoElBefore {
		t.Fatalf("expected legacy single-colon ::before, got %+v", comps[1])
	}
}

func TestParseUnsupportedPseudoFallsBackToCustom(t *testing.T) {
	log := logger.NewDeferLog()
	list, ok := Parse(log, "<test>", ":made-up-pseudo", Options{ErrorRecovery: true})
	if !ok {
		t.Fatalf("expected unrecognized pseudo to still parse, errors: %v", log.Done())
	}
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindNonTSPseudoClass || comp.PseudoClass.Kind != css_ast.PseudoCustom {
		t.Fatalf("expected PseudoCustom fallback, got %+v", comp)
	}
	if len(log.Done()) != 1 {
		t.Fatalf("expected one warning with ErrorRecovery on, got %d", len(log.Done()))
	}
}

func TestParseUnsupportedVendorPseudoNeverWarns(t *testing.T) {
	log := logger.NewDeferLog()
	_, ok := Parse(log, "<test>", ":-unknown-vendor-thing", Options{ErrorRecovery: true})
	if !ok {
		t.Fatalf("expected leading-dash unrecognized pseudo to still parse, errors: %v", log.Done())
	}
	if len(log.Done()) != 0 {
		t.Fatalf("expected no warning for a leading-dash name, got %v", log.Done())
	}
}

func TestParseNestingRequiresOption(t *testing.T) {
	parseFail(t, "&.foo", Options{Nesting: false})
	list := parseOk(t, "&.foo", Options{Nesting: true})
	comps := list.Selectors[0].Components
	if comps[0].Kind != css_ast.KindNesting {
		t.Fatalf("expected nesting selector, got %+v", comps[0])
	}
}

func TestParseNestingFollowedByTypeSelector(t *testing.T) {
	list := parseOk(t, "&div", Options{Nesting: true})
	comps := list.Selectors[0].Components
	if len(comps) != 2 {
		t.Fatalf("expected nesting+type, got %d components: %+v", len(comps), comps)
	}
	if comps[0].Kind != css_ast.KindNesting {
		t.Fatalf("expected first component to be nesting, got %+v", comps[0])
	}
	if comps[1].Kind != css_ast.KindLocalName || comps[1].TypeSelector.Name != "div" {
		t.Fatalf("expected second component to be the 'div' type selector, got %+v", comps[1])
	}
}

func TestParseCSSModulesPseudos(t *testing.T) {
	list := parseOk(t, ":local(.foo) :global(.bar)", Options{CSSModules: &CSSModulesConfig{}})
	groups := list.Selectors[0].ParseOrderGroups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 compound groups, got %d", len(groups))
	}
	if groups[0].Components[0].PseudoClass.Kind != css_ast.PseudoLocal {
		t.Fatalf("expected :local(), got %+v", groups[0].Components[0])
	}
	if groups[1].Components[0].PseudoClass.Kind != css_ast.PseudoGlobal {
		t.Fatalf("expected :global(), got %+v", groups[1].Components[0])
	}
}

func TestParseUniversalAndNamespace(t *testing.T) {
	list := parseOk(t, "svg|*", Options{})
	comps := list.Selectors[0].Components
	if comps[0].Kind != css_ast.KindNamespace || comps[0].Name != "svg" {
		t.Fatalf("expected namespace prefix, got %+v", comps[0])
	}
	if comps[1].Kind != css_ast.KindExplicitUniversalType {
		t.Fatalf("expected universal type, got %+v", comps[1])
	}
}

func TestParseExplicitNoNamespace(t *testing.T) {
	list := parseOk(t, "|div", Options{})
	comps := list.Selectors[0].Components
	if comps[0].Kind != css_ast.KindExplicitNoNamespace {
		t.Fatalf("expected explicit no-namespace marker, got %+v", comps[0])
	}
	if comps[1].Kind != css_ast.KindLocalName || comps[1].TypeSelector.Name != "div" {
		t.Fatalf("expected local name 'div' after no-namespace marker, got %+v", comps[1])
	}
}

func TestParseInvalidTrailingTokenFails(t *testing.T) {
	parseFail(t, "div)", Options{})
}

func TestParseEmptyInputFails(t *testing.T) {
	parseFail(t, "", Options{})
}

func TestParseWebkitAny(t *testing.T) {
	list := parseOk(t, ":-webkit-any(.a, .b)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindAny || comp.AnyPrefix != css_ast.VendorWebKit {
		t.Fatalf("expected KindAny with webkit prefix, got %+v", comp)
	}
}

func TestParseHostAndSlotted(t *testing.T) {
	list := parseOk(t, ":host(.theme-dark)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindHost || comp.Selectors == nil {
		t.Fatalf("expected :host(.theme-dark) to carry an argument list, got %+v", comp)
	}

	list = parseOk(t, "::slotted(span)", Options{})
	comp = list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindSlotted {
		t.Fatalf("expected ::slotted(span), got %+v", comp)
	}
}

func TestParsePart(t *testing.T) {
	list := parseOk(t, "::part(tab panel)", Options{})
	comp := list.Selectors[0].Components[0]
	if comp.Kind != css_ast.KindPart || len(comp.Parts) != 2 || comp.Parts[1] != "panel" {
		t.Fatalf("expected ::part(tab panel), got %+v", comp)
	}
}
