// Package css_printer is the Serializer: it implements the CSSOM
// "Serializing Selectors" algorithm (spec.md §4.2) plus this subsystem's
// extensions — nesting expansion against a StyleContext, CSS-modules name
// remapping, vendor-prefix overrides for emitting a prefixed sibling rule,
// and shortest-form attribute-value selection.
package css_printer

import (
	"strconv"
	"strings"

	"github.com/vladinator1000/cssselect/internal/compat"
	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/css_lexer"
	"github.com/vladinator1000/cssselect/internal/css_modules"
)

// UserActionPseudoClassRemap lets a server-rendering caller spell a
// user-action pseudo-class as a plain class instead (e.g. ":hover" as
// ".is-hover") the way spec.md §3's PrinterOptions.pseudo_classes remap
// does. An empty field leaves that pseudo-class unremapped.
type UserActionPseudoClassRemap struct {
	Hover, Active, Focus, FocusVisible, FocusWithin string
}

// StyleContext carries the enclosing rule's selector list down into
// nesting-selector (&) serialization without storing a back-pointer on
// the tree itself (spec.md §9 design note: "the parent StyleContext is
// passed by reference down serialization, not stored on the tree").
type StyleContext struct {
	ParentSelectors *css_ast.SelectorList
	Outer           *StyleContext
}

// Options is the PrinterOptions/PrinterContext record (spec.md §3).
type Options struct {
	Minify   bool
	Targets  *compat.Browsers
	Oracle   compat.Oracle // nil defaults to compat.DefaultOracle{}
	VendorPrefix css_ast.VendorPrefix // override; VendorNone means "no override"
	PseudoClasses *UserActionPseudoClassRemap
	CSSModule css_modules.Renamer // nil disables CSS-modules renaming
	Context   *StyleContext
}

type printer struct {
	css                  []byte
	options              Options
	cssModuleSuppressed  bool
}

func (p *printer) writeStr(s string) { p.css = append(p.css, s...) }
func (p *printer) writeByte(b byte)  { p.css = append(p.css, b) }

// printListComma writes the separator between items of a comma-separated
// list (a selector list, or a :lang() argument list): a bare "," when
// minifying, else "," followed by a single space (spec.md §6's
// output-sink contract).
func (p *printer) printListComma() {
	p.writeByte(',')
	if !p.options.Minify {
		p.writeByte(' ')
	}
}

func (p *printer) oracle() compat.Oracle {
	if p.options.Oracle != nil {
		return p.options.Oracle
	}
	return compat.DefaultOracle{}
}

func (p *printer) effectivePrefix(stored css_ast.VendorPrefix) css_ast.VendorPrefix {
	if !p.options.VendorPrefix.IsEmpty() {
		return p.options.VendorPrefix
	}
	return stored
}

func (p *printer) renameLocal(name string) string {
	if p.options.CSSModule == nil || p.cssModuleSuppressed {
		return name
	}
	return p.options.CSSModule.RenameLocal(name)
}

// SerializeSelectorList serializes a full comma-separated selector list.
func SerializeSelectorList(list css_ast.SelectorList, o Options) string {
	p := &printer{options: o}
	p.printSelectorListInline(list, false)
	return string(p.css)
}

// SerializeSelector serializes a single selector (no enclosing list comma).
func SerializeSelector(sel css_ast.Selector, o Options) string {
	p := &printer{options: o}
	p.printComplexSelector(sel, false)
	return string(p.css)
}

func (p *printer) printSelectorListInline(list css_ast.SelectorList, insideHas bool) {
	for i, sel := range list.Selectors {
		if i > 0 {
			p.printListComma()
		}
		p.printComplexSelector(sel, insideHas)
	}
}

// printComplexSelector walks one Selector's compound groups left to right
// (spec.md §4.2 rule 1), applying the :has()-relative-selector :scope
// elision (rule 5) when insideHas is set.
func (p *printer) printComplexSelector(sel css_ast.Selector, insideHas bool) {
	groups := sel.ParseOrderGroups()
	atStart := true

	start := 0
	if insideHas && len(groups) > 1 && isPlainScopeGroup(groups[0].Components) && groups[1].HasPrecedingCombinator {
		start = 1
	}

	for i := start; i < len(groups); i++ {
		g := groups[i]
		if g.HasPrecedingCombinator {
			p.printCombinator(g.PrecedingCombinator, &atStart)
		}
		p.printCompoundGroupComponents(g.Components, insideHas, &atStart)
	}
}

func isPlainScopeGroup(comps []css_ast.Component) bool {
	return len(comps) == 1 && comps[0].Kind == css_ast.KindScope
}

func (p *printer) printCombinator(c css_ast.Combinator, atStart *bool) {
	if c.IsSynthetic() {
		return
	}
	if c == css_ast.Descendant {
		if !*atStart {
			p.writeByte(' ')
		}
		*atStart = false
		return
	}
	sym := c.String()
	if p.options.Minify {
		p.writeStr(sym)
	} else {
		if !*atStart {
			p.writeByte(' ')
		}
		p.writeStr(sym)
		p.writeByte(' ')
	}
	*atStart = false
}

// printCompoundGroupComponents prints one compound selector's simple
// selectors in parse order, after resolving any nesting-selector
// substitution and applying universal-type elision (rules 2, 3, 9).
func (p *printer) printCompoundGroupComponents(comps []css_ast.Component, insideHas bool, atStart *bool) {
	comps = p.resolveNesting(comps)
	skip := universalElisionIndex(comps)
	for i, c := range comps {
		if i == skip {
			continue
		}
		p.printComponent(c, insideHas)
		*atStart = false
	}
}

func universalElisionIndex(comps []css_ast.Component) int {
	for i, c := range comps {
		if c.Kind == css_ast.KindExplicitUniversalType {
			hasNamespacePrefix := i > 0 && isNamespaceKind(comps[i-1].Kind)
			if !hasNamespacePrefix && len(comps) > 1 {
				return i
			}
		}
	}
	return -1
}

func isNamespaceKind(k css_ast.ComponentKind) bool {
	switch k {
	case css_ast.KindExplicitNoNamespace, css_ast.KindExplicitAnyNamespace, css_ast.KindNamespace:
		return true
	}
	return false
}

func isTypeSelectorKind(k css_ast.ComponentKind) bool {
	switch k {
	case css_ast.KindLocalName, css_ast.KindExplicitUniversalType, css_ast.KindNamespace,
		css_ast.KindExplicitNoNamespace, css_ast.KindExplicitAnyNamespace:
		return true
	}
	return false
}

// resolveNesting implements rule 9: with CssNesting supported, "&" is left
// in place (printed literally below); without support, it is substituted
// either with ":scope" (no StyleContext) or with the parent selector list
// material, swapping a leading "&" ahead of an immediately-following type
// selector so the result stays a valid compound ("&div" -> "div&" before
// substitution, so substitution lands after the type name).
func (p *printer) resolveNesting(comps []css_ast.Component) []css_ast.Component {
	if p.oracle().IsCompatible(compat.CssNesting, p.options.Targets) {
		return comps
	}

	idx := -1
	for i, c := range comps {
		if c.Kind == css_ast.KindNesting {
			idx = i
			break
		}
	}
	if idx < 0 {
		return comps
	}

	if idx+1 < len(comps) && isTypeSelectorKind(comps[idx+1].Kind) {
		swapped := append([]css_ast.Component(nil), comps...)
		swapped[idx], swapped[idx+1] = swapped[idx+1], swapped[idx]
		comps = swapped
		idx++
	}

	replacement := p.nestingReplacementComponents(idx == 0)
	out := make([]css_ast.Component, 0, len(comps)-1+len(replacement))
	out = append(out, comps[:idx]...)
	out = append(out, replacement...)
	out = append(out, comps[idx+1:]...)
	return out
}

func (p *printer) nestingReplacementComponents(isFirstInCompound bool) []css_ast.Component {
	ctx := p.options.Context
	if ctx == nil || ctx.ParentSelectors == nil {
		return []css_ast.Component{{Kind: css_ast.KindScope}}
	}
	parent := ctx.ParentSelectors
	if len(parent.Selectors) == 1 {
		branch := parent.Selectors[0]
		noCombinator := len(branch.Groups()) == 1
		if noCombinator && (isFirstInCompound || !branch.HasTypeSelector()) {
			return append([]css_ast.Component(nil), branch.Components...)
		}
	}
	return []css_ast.Component{{Kind: css_ast.KindIs, Selectors: parent}}
}

func (p *printer) printComponent(c css_ast.Component, insideHas bool) {
	switch c.Kind {
	case css_ast.KindLocalName, css_ast.KindExplicitUniversalType:
		p.writeStr(c.TypeSelector.Name)
	case css_ast.KindExplicitNoNamespace:
		p.writeByte('|')
	case css_ast.KindExplicitAnyNamespace:
		p.writeStr("*|")
	case css_ast.KindNamespace:
		p.writeStr(c.Name)
		p.writeByte('|')
	case css_ast.KindDefaultNamespace:
		// Inert: a default namespace never disables universal-type
		// elision and is never itself spelled out (rule 3).
	case css_ast.KindID:
		p.writeByte('#')
		p.writeStr(p.renameLocal(c.Name))
	case css_ast.KindClass:
		p.writeByte('.')
		p.writeStr(p.renameLocal(c.Name))
	case css_ast.KindNesting:
		p.writeByte('&')
	case css_ast.KindScope:
		p.writeStr(":scope")
	case css_ast.KindRoot:
		p.writeStr(":root")
	case css_ast.KindEmpty:
		p.writeStr(":empty")
	case css_ast.KindFirstChild, css_ast.KindLastChild, css_ast.KindOnlyChild,
		css_ast.KindFirstOfType, css_ast.KindLastOfType, css_ast.KindOnlyOfType:
		p.writeByte(':')
		p.writeStr(css_ast.NameForStructuralComponent(c.Kind))
	case css_ast.KindNthChild, css_ast.KindNthLastChild, css_ast.KindNthOfType,
		css_ast.KindNthLastOfType, css_ast.KindNthCol, css_ast.KindNthLastCol:
		p.printNth(c.Kind, c.Nth)
	case css_ast.KindAttributeInNoNamespaceExists, css_ast.KindAttributeInNoNamespace, css_ast.KindAttributeOther:
		p.printAttribute(c)
	case css_ast.KindIs:
		p.printIs(c, insideHas)
	case css_ast.KindWhere:
		p.writeStr(":where(")
		if c.Selectors != nil {
			p.printSelectorListInline(*c.Selectors, insideHas)
		}
		p.writeByte(')')
	case css_ast.KindNegation:
		p.printNegation(c, insideHas)
	case css_ast.KindHas:
		p.writeStr(":has(")
		if c.Selectors != nil {
			p.printSelectorListInline(*c.Selectors, true)
		}
		p.writeByte(')')
	case css_ast.KindAny:
		p.printAny(c, insideHas)
	case css_ast.KindHost:
		p.writeStr(":host")
		if c.Selectors != nil && len(c.Selectors.Selectors) > 0 {
			p.writeByte('(')
			p.printSelectorListInline(*c.Selectors, false)
			p.writeByte(')')
		}
	case css_ast.KindSlotted:
		p.writeStr("::slotted(")
		if c.Selectors != nil {
			p.printSelectorListInline(*c.Selectors, false)
		}
		p.writeByte(')')
	case css_ast.KindPart:
		p.writeStr("::part(")
		for i, name := range c.Parts {
			if i > 0 {
				p.writeByte(' ')
			}
			p.writeStr(name)
		}
		p.writeByte(')')
	case css_ast.KindNonTSPseudoClass:
		p.printPseudoClass(c.PseudoClass, insideHas)
	case css_ast.KindPseudoElement:
		p.printPseudoElement(c.PseudoElement)
	}
}

// printIs implements rule 7: collapse a single combinator-free, type-selector-free
// branch down to its bare contents, else wrap in :is(...), or in
// :-webkit-any()/:-moz-any() when a vendor-prefix override names one of
// those engines (the AnyPseudo downlevel spelling takes priority over
// collapsing, since it must remain parseable by the old engine it targets).
func (p *printer) printIs(c css_ast.Component, insideHas bool) {
	override := p.options.VendorPrefix
	if override.Contains(css_ast.VendorWebKit) || override.Contains(css_ast.VendorMoz) {
		name := "-webkit-any"
		if override.Contains(css_ast.VendorMoz) && !override.Contains(css_ast.VendorWebKit) {
			name = "-moz-any"
		}
		p.writeByte(':')
		p.writeStr(name)
		p.writeByte('(')
		if c.Selectors != nil {
			p.printSelectorListInline(*c.Selectors, insideHas)
		}
		p.writeByte(')')
		return
	}

	if c.Selectors != nil && len(c.Selectors.Selectors) == 1 {
		branch := c.Selectors.Selectors[0]
		if len(branch.Groups()) == 1 && !branch.HasTypeSelector() {
			atStart := false
			p.printCompoundGroupComponents(branch.Components, insideHas, &atStart)
			return
		}
	}

	p.writeStr(":is(")
	if c.Selectors != nil {
		p.printSelectorListInline(*c.Selectors, insideHas)
	}
	p.writeByte(')')
}

// printNegation implements rule 8: expand :not(a, b) to :not(a):not(b)
// when the targets don't support CSS-Not-Selector-List and there's more
// than one branch. Idempotent under a Downleveler that already split it,
// since a single-branch :not() always takes the combined-form path.
func (p *printer) printNegation(c css_ast.Component, insideHas bool) {
	supported := true
	if p.options.Targets != nil {
		supported = p.oracle().IsCompatible(compat.CssNotSelList, p.options.Targets)
	}
	if supported || c.Selectors == nil || len(c.Selectors.Selectors) <= 1 {
		p.writeStr(":not(")
		if c.Selectors != nil {
			p.printSelectorListInline(*c.Selectors, insideHas)
		}
		p.writeByte(')')
		return
	}
	for _, sel := range c.Selectors.Selectors {
		p.writeStr(":not(")
		p.printComplexSelector(sel, insideHas)
		p.writeByte(')')
	}
}

func (p *printer) printAny(c css_ast.Component, insideHas bool) {
	prefix := c.AnyPrefix
	if !p.options.VendorPrefix.IsEmpty() {
		prefix = p.options.VendorPrefix
	}
	name := "-webkit-any"
	if prefix == css_ast.VendorMoz {
		name = "-moz-any"
	}
	p.writeByte(':')
	p.writeStr(name)
	p.writeByte('(')
	if c.Selectors != nil {
		p.printSelectorListInline(*c.Selectors, insideHas)
	}
	p.writeByte(')')
}

func (p *printer) printAttribute(c css_ast.Component) {
	attr := c.Attribute
	p.writeByte('[')
	if attr.Name.Prefix != nil {
		p.writeStr(*attr.Name.Prefix)
		p.writeByte('|')
	}
	p.writeStr(attr.Name.Name)
	if attr.Operator != css_ast.AttrExists {
		p.writeStr(attr.Operator.String())
		p.printAttributeValue(attr.Value)
		switch attr.CaseSensitivity {
		case css_ast.CaseInsensitive:
			p.writeStr(" i")
		case css_ast.ExplicitCaseSensitive:
			p.writeStr(" s")
		}
	}
	p.writeByte(']')
}

// printAttributeValue implements rule 6: when minifying, prefer the bare
// identifier spelling over the quoted one whenever the value qualifies as
// one (it is never longer, so there is nothing to compare once validity
// is established); otherwise always quote.
func (p *printer) printAttributeValue(value string) {
	if p.options.Minify && isValidCSSIdentValue(value) {
		p.writeStr(value)
		return
	}
	p.writeByte('"')
	p.writeStr(value)
	p.writeByte('"')
}

func isValidCSSIdentValue(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	i := 0
	if runes[0] == '-' {
		i = 1
		if len(runes) == 1 {
			return false
		}
	}
	if !css_lexer.IsNameStart(runes[i]) {
		return false
	}
	for _, r := range runes[i+1:] {
		if !css_lexer.IsNameContinue(r) {
			return false
		}
	}
	return true
}

func (p *printer) printNth(kind css_ast.ComponentKind, nth *css_ast.NthIndex) {
	p.writeByte(':')
	p.writeStr(nthFunctionName(kind))
	p.writeByte('(')
	p.writeStr(anPlusBString(nth.A, nth.B))
	if nth.Of != nil {
		p.writeStr(" of ")
		p.printSelectorListInline(*nth.Of, false)
	}
	p.writeByte(')')
}

func nthFunctionName(kind css_ast.ComponentKind) string {
	switch kind {
	case css_ast.KindNthChild:
		return "nth-child"
	case css_ast.KindNthLastChild:
		return "nth-last-child"
	case css_ast.KindNthOfType:
		return "nth-of-type"
	case css_ast.KindNthLastOfType:
		return "nth-last-of-type"
	case css_ast.KindNthCol:
		return "nth-col"
	case css_ast.KindNthLastCol:
		return "nth-last-col"
	}
	return ""
}

func anPlusBString(a, b int) string {
	if a == 0 {
		return strconv.Itoa(b)
	}
	var sb strings.Builder
	switch a {
	case 1:
		sb.WriteString("n")
	case -1:
		sb.WriteString("-n")
	default:
		sb.WriteString(strconv.Itoa(a))
		sb.WriteString("n")
	}
	if b > 0 {
		sb.WriteString("+")
		sb.WriteString(strconv.Itoa(b))
	} else if b < 0 {
		sb.WriteString(strconv.Itoa(b))
	}
	return sb.String()
}

func remappedClassName(r *UserActionPseudoClassRemap, kind css_ast.PseudoClassKind) (string, bool) {
	switch kind {
	case css_ast.PseudoHover:
		return r.Hover, r.Hover != ""
	case css_ast.PseudoActive:
		return r.Active, r.Active != ""
	case css_ast.PseudoFocus:
		return r.Focus, r.Focus != ""
	case css_ast.PseudoFocusVisible:
		return r.FocusVisible, r.FocusVisible != ""
	case css_ast.PseudoFocusWithin:
		return r.FocusWithin, r.FocusWithin != ""
	}
	return "", false
}

// printPseudoClass dispatches user-action remapping (rule 10), the
// linguistic/CSS-modules variants that carry extra payload, and falls
// back to the prefixable-pseudo name table for everything else (rule 12).
func (p *printer) printPseudoClass(pc *css_ast.PseudoClass, insideHas bool) {
	if pc == nil {
		return
	}
	if remap := p.options.PseudoClasses; remap != nil {
		if name, ok := remappedClassName(remap, pc.Kind); ok {
			p.writeByte('.')
			p.writeStr(name)
			return
		}
	}

	switch pc.Kind {
	case css_ast.PseudoLang:
		p.writeStr(":lang(")
		for i, lang := range pc.Languages {
			if i > 0 {
				p.printListComma()
			}
			p.writeStr(lang)
		}
		p.writeByte(')')

	case css_ast.PseudoDir:
		p.writeStr(":dir(")
		if pc.Direction == css_ast.Rtl {
			p.writeStr("rtl")
		} else {
			p.writeStr("ltr")
		}
		p.writeByte(')')

	case css_ast.PseudoLocal:
		// :local(...) is CSS-modules' default scoping made explicit; it
		// carries no distinct textual representation of its own.
		if pc.Selector != nil {
			p.printSelectorListInline(*pc.Selector, insideHas)
		}

	case css_ast.PseudoGlobal:
		// Rule 11: suppress renaming for the inner selector only, saving
		// and restoring the printer's CSS-modules state around it.
		if pc.Selector != nil {
			saved := p.cssModuleSuppressed
			p.cssModuleSuppressed = true
			p.printSelectorListInline(*pc.Selector, insideHas)
			p.cssModuleSuppressed = saved
		}

	case css_ast.PseudoCustom:
		p.writeByte(':')
		p.writeStr(pc.Name)

	case css_ast.PseudoCustomFunction:
		p.writeByte(':')
		p.writeStr(pc.Name)
		p.writeByte('(')
		p.printTokens(pc.Tokens)
		p.writeByte(')')

	default:
		p.writeByte(':')
		p.writeStr(css_ast.NameForPseudoClass(pc.Kind, p.effectivePrefix(pc.Prefix)))
	}
}

// printPseudoElement handles the legacy single-colon spellings (rule 13),
// the functional ::cue()/::cue-region() forms, and falls back to the
// prefixable-pseudo name table otherwise (rule 12).
func (p *printer) printPseudoElement(pe *css_ast.PseudoElement) {
	if pe == nil {
		return
	}
	switch pe.Kind {
	case css_ast.PseudoElAfter, css_ast.PseudoElBefore, css_ast.PseudoElFirstLine, css_ast.PseudoElFirstLetter:
		p.writeByte(':')
		p.writeStr(css_ast.NameForPseudoElement(pe.Kind, pe.Prefix))

	case css_ast.PseudoElCueFunction:
		p.writeStr("::cue(")
		if pe.Selector != nil {
			p.printSelectorListInline(*pe.Selector, false)
		}
		p.writeByte(')')

	case css_ast.PseudoElCueRegionFunction:
		p.writeStr("::cue-region(")
		if pe.Selector != nil {
			p.printSelectorListInline(*pe.Selector, false)
		}
		p.writeByte(')')

	case css_ast.PseudoElCustom:
		p.writeStr("::")
		p.writeStr(pe.Name)

	case css_ast.PseudoElCustomFunction:
		p.writeStr("::")
		p.writeStr(pe.Name)
		p.writeByte('(')
		p.printTokens(pe.Tokens)
		p.writeByte(')')

	default:
		p.writeStr("::")
		p.writeStr(css_ast.NameForPseudoElement(pe.Kind, p.effectivePrefix(pe.Prefix)))
	}
}

func (p *printer) printTokens(tokens []css_ast.Token) {
	for _, t := range tokens {
		p.writeStr(t.Text)
		if len(t.Children) > 0 {
			p.printTokens(t.Children)
		}
	}
}
