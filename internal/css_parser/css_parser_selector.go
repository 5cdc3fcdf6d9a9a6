package css_parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/css_lexer"
	"github.com/vladinator1000/cssselect/internal/logger"
)

type selectorListOpts struct {
	// AllowLeadingCombinator permits a selector list to open with a bare
	// combinator (the relative-selector grammar :has() uses, e.g.
	// ":has(> img)").
	AllowLeadingCombinator bool
}

func (p *parser) parseSelectorList(opts selectorListOpts) ([]css_ast.Selector, bool) {
	var list []css_ast.Selector
	for {
		p.skipWhitespace()
		sel, ok := p.parseComplexSelector(opts.AllowLeadingCombinator)
		if !ok {
			return nil, false
		}
		list = append(list, sel)
		p.skipWhitespace()
		if !p.eat(css_lexer.TComma) {
			break
		}
	}
	return list, true
}

func (p *parser) parseParenSelectorList(opts selectorListOpts) (*css_ast.SelectorList, bool) {
	p.skipWhitespace()
	list, ok := p.parseSelectorList(opts)
	if !ok {
		return nil, false
	}
	if !p.expect(css_lexer.TCloseParen) {
		return nil, false
	}
	return &css_ast.SelectorList{Selectors: list}, true
}

// parseCompoundSelectorAsList parses a single compound selector argument
// (::slotted(), :host(), ::cue()) and wraps it in a one-element list. The
// caller still owns consuming the closing parenthesis.
func (p *parser) parseCompoundSelectorAsList() (*css_ast.SelectorList, bool) {
	p.skipWhitespace()
	comps, ok := p.parseCompoundSelector()
	if !ok {
		return nil, false
	}
	p.skipWhitespace()
	return &css_ast.SelectorList{Selectors: []css_ast.Selector{{Components: comps}}}, true
}

func (p *parser) parseComplexSelector(allowLeadingCombinator bool) (css_ast.Selector, bool) {
	var groups []css_ast.CompoundGroup
	var pending css_ast.Combinator
	havePending := false

	p.skipWhitespace()
	if allowLeadingCombinator {
		if comb, ok := p.tryCombinator(); ok {
			pending, havePending = comb, true
			p.skipWhitespace()
		}
	}

	for {
		comps, ok := p.parseCompoundSelector()
		if !ok {
			return css_ast.Selector{}, false
		}
		group := css_ast.CompoundGroup{Components: comps}
		if havePending {
			group.PrecedingCombinator = pending
			group.HasPrecedingCombinator = true
		}
		groups = append(groups, group)

		hadWS := p.skipWhitespace()
		if p.isSelectorBoundary() {
			break
		}
		if comb, ok := p.tryCombinator(); ok {
			p.skipWhitespace()
			pending, havePending = comb, true
		} else if hadWS {
			pending, havePending = css_ast.Descendant, true
		} else {
			p.unexpected()
			return css_ast.Selector{}, false
		}
	}

	return css_ast.BuildSelectorFromParseOrder(groups), true
}

func (p *parser) parseCompoundSelector() ([]css_ast.Component, bool) {
	var comps []css_ast.Component

	if ts, ok := p.tryParseTypeSelector(); ok {
		comps = append(comps, ts...)
	}

loop:
	for {
		switch p.current().Kind {
		case css_lexer.THash:
			if !p.current().IsID {
				break loop
			}
			loc := p.current().Range.Loc
			name := p.decoded()
			p.advance()
			comps = append(comps, css_ast.Component{Kind: css_ast.KindID, Name: name, Loc: loc})

		case css_lexer.TDelimDot:
			loc := p.current().Range.Loc
			p.advance()
			if !p.peek(css_lexer.TIdent) {
				p.unexpected()
				return nil, false
			}
			name := p.decoded()
			p.advance()
			comps = append(comps, css_ast.Component{Kind: css_ast.KindClass, Name: name, Loc: loc})

		case css_lexer.TOpenBracket:
			comp, ok := p.parseAttributeSelector()
			if !ok {
				return nil, false
			}
			comps = append(comps, comp)

		case css_lexer.TColon:
			parsed, ok := p.parsePseudo()
			if !ok {
				return nil, false
			}
			comps = append(comps, parsed...)

		case css_lexer.TDelimAmpersand:
			if !p.options.Nesting {
				break loop
			}
			loc := p.current().Range.Loc
			p.advance()
			comps = append(comps, css_ast.Component{Kind: css_ast.KindNesting, Loc: loc})
			if p.peek(css_lexer.TIdent) || p.peek(css_lexer.TDelimAsterisk) || p.peek(css_lexer.TDelimBar) {
				ts, ok := p.tryParseTypeSelector()
				if !ok {
					p.unexpected()
					return nil, false
				}
				comps = append(comps, ts...)
			}

		default:
			break loop
		}
	}

	if len(comps) == 0 {
		p.unexpected()
		return nil, false
	}
	return comps, true
}

// ---- type selectors and namespaces ----

func (p *parser) tryParseTypeSelector() ([]css_ast.Component, bool) {
	loc := p.current().Range.Loc

	if p.peek(css_lexer.TDelimBar) {
		p.advance()
		comps := []css_ast.Component{{Kind: css_ast.KindExplicitNoNamespace, Loc: loc}}
		ts, ok := p.parseBareTypeSelectorName()
		if !ok {
			return nil, false
		}
		return append(comps, ts), true
	}

	if p.peek(css_lexer.TDelimAsterisk) {
		save := p.index
		p.advance()
		if p.peek(css_lexer.TDelimBar) {
			p.advance()
			comps := []css_ast.Component{{Kind: css_ast.KindExplicitAnyNamespace, Loc: loc}}
			ts, ok := p.parseBareTypeSelectorName()
			if !ok {
				return nil, false
			}
			return append(comps, ts), true
		}
		p.index = save
		p.advance()
		return []css_ast.Component{{Kind: css_ast.KindExplicitUniversalType, TypeSelector: &css_ast.NamespacedName{Name: "*"}, Loc: loc}}, true
	}

	if p.peek(css_lexer.TIdent) {
		name := p.decoded()
		p.advance()
		if p.peek(css_lexer.TDelimBar) {
			p.advance()
			// Resolving a namespace prefix to a URL is the job of an
			// external stylesheet-level @namespace table; absent one, the
			// prefix string stands in for its own URL.
			comps := []css_ast.Component{{Kind: css_ast.KindNamespace, Name: name, NamespaceURL: name, Loc: loc}}
			ts, ok := p.parseBareTypeSelectorName()
			if !ok {
				return nil, false
			}
			return append(comps, ts), true
		}
		return []css_ast.Component{{Kind: css_ast.KindLocalName, TypeSelector: &css_ast.NamespacedName{Name: name}, Loc: loc}}, true
	}

	return nil, false
}

func (p *parser) parseBareTypeSelectorName() (css_ast.Component, bool) {
	loc := p.current().Range.Loc
	if p.peek(css_lexer.TDelimAsterisk) {
		p.advance()
		return css_ast.Component{Kind: css_ast.KindExplicitUniversalType, TypeSelector: &css_ast.NamespacedName{Name: "*"}, Loc: loc}, true
	}
	if p.peek(css_lexer.TIdent) {
		name := p.decoded()
		p.advance()
		return css_ast.Component{Kind: css_ast.KindLocalName, TypeSelector: &css_ast.NamespacedName{Name: name}, Loc: loc}, true
	}
	p.unexpected()
	return css_ast.Component{}, false
}

// ---- attribute selectors ----

func (p *parser) parseAttributeSelector() (css_ast.Component, bool) {
	loc := p.current().Range.Loc
	p.advance() // consume '['
	p.skipWhitespace()

	var prefix *string
	namespaceExplicit := false
	var name string

	switch {
	case p.peek(css_lexer.TDelimBar):
		p.advance()
		namespaceExplicit = true
		empty := ""
		prefix = &empty
		if !p.peek(css_lexer.TIdent) {
			p.unexpected()
			return css_ast.Component{}, false
		}
		name = p.decoded()
		p.advance()

	case p.peek(css_lexer.TDelimAsterisk):
		p.advance()
		if !p.expect(css_lexer.TDelimBar) {
			return css_ast.Component{}, false
		}
		namespaceExplicit = true
		star := "*"
		prefix = &star
		if !p.peek(css_lexer.TIdent) {
			p.unexpected()
			return css_ast.Component{}, false
		}
		name = p.decoded()
		p.advance()

	case p.peek(css_lexer.TIdent):
		first := p.decoded()
		p.advance()
		if p.peek(css_lexer.TDelimBar) {
			p.advance()
			namespaceExplicit = true
			prefix = &first
			if !p.peek(css_lexer.TIdent) {
				p.unexpected()
				return css_ast.Component{}, false
			}
			name = p.decoded()
			p.advance()
		} else {
			name = first
		}

	default:
		p.unexpected()
		return css_ast.Component{}, false
	}

	p.skipWhitespace()

	attr := css_ast.AttributeSelector{
		Name:                css_ast.NamespacedName{Prefix: prefix, Name: name},
		NamespaceIsExplicit: namespaceExplicit,
	}

	if p.eat(css_lexer.TCloseBracket) {
		kind := css_ast.KindAttributeOther
		if !namespaceExplicit {
			kind = css_ast.KindAttributeInNoNamespaceExists
		}
		return css_ast.Component{Kind: kind, Attribute: &attr, Loc: loc}, true
	}

	op, ok := p.parseAttrOperator()
	if !ok {
		return css_ast.Component{}, false
	}
	attr.Operator = op
	p.skipWhitespace()

	switch p.current().Kind {
	case css_lexer.TString, css_lexer.TIdent:
		attr.Value = p.decoded()
		p.advance()
	default:
		p.unexpected()
		return css_ast.Component{}, false
	}

	p.skipWhitespace()

	if p.peek(css_lexer.TIdent) {
		switch strings.ToLower(p.decoded()) {
		case "i":
			attr.CaseSensitivity = css_ast.CaseInsensitive
		case "s":
			attr.CaseSensitivity = css_ast.ExplicitCaseSensitive
		default:
			p.unexpected()
			return css_ast.Component{}, false
		}
		p.advance()
		p.skipWhitespace()
	}

	if !p.expect(css_lexer.TCloseBracket) {
		return css_ast.Component{}, false
	}

	kind := css_ast.KindAttributeOther
	if !namespaceExplicit {
		kind = css_ast.KindAttributeInNoNamespace
	}
	return css_ast.Component{Kind: kind, Attribute: &attr, Loc: loc}, true
}

func (p *parser) parseAttrOperator() (css_ast.AttrOperator, bool) {
	switch p.current().Kind {
	case css_lexer.TDelimEquals:
		p.advance()
		return css_ast.AttrEqual, true
	case css_lexer.TDelimTilde:
		p.advance()
		if !p.expect(css_lexer.TDelimEquals) {
			return 0, false
		}
		return css_ast.AttrIncludes, true
	case css_lexer.TDelimBar:
		p.advance()
		if !p.expect(css_lexer.TDelimEquals) {
			return 0, false
		}
		return css_ast.AttrDashMatch, true
	case css_lexer.TDelimCaret:
		p.advance()
		if !p.expect(css_lexer.TDelimEquals) {
			return 0, false
		}
		return css_ast.AttrPrefix, true
	case css_lexer.TDelimDollar:
		p.advance()
		if !p.expect(css_lexer.TDelimEquals) {
			return 0, false
		}
		return css_ast.AttrSuffix, true
	case css_lexer.TDelimAsterisk:
		p.advance()
		if !p.expect(css_lexer.TDelimEquals) {
			return 0, false
		}
		return css_ast.AttrSubstring, true
	}
	p.unexpected()
	return 0, false
}

// ---- pseudo-classes and pseudo-elements ----

func (p *parser) parsePseudo() ([]css_ast.Component, bool) {
	loc := p.current().Range.Loc
	p.advance() // consume ':'
	doubleColon := p.eat(css_lexer.TColon)

	switch p.current().Kind {
	case css_lexer.TIdent:
		name := p.decoded()
		r := p.current().Range
		p.advance()
		return p.dispatchIdentPseudo(loc, r, name, doubleColon)

	case css_lexer.TFunction:
		name := p.decoded()
		r := p.current().Range
		p.advance()
		return p.dispatchFunctionPseudo(loc, r, name, doubleColon)
	}

	p.unexpected()
	return nil, false
}

func (p *parser) dispatchIdentPseudo(loc logger.Loc, r logger.Range, name string, doubleColon bool) ([]css_ast.Component, bool) {
	if !doubleColon && css_ast.IsLegacySingleColonPseudoElement(name) {
		doubleColon = true
	}

	if doubleColon {
		if kind, prefix, ok := css_ast.LookupPseudoElementName(name); ok {
			return []css_ast.Component{{Kind: css_ast.KindPseudoElement, Loc: loc,
				PseudoElement: &css_ast.PseudoElement{Kind: kind, Prefix: prefix}}}, true
		}
		p.warnUnsupportedPseudo(r, name)
		return []css_ast.Component{{Kind: css_ast.KindPseudoElement, Loc: loc,
			PseudoElement: &css_ast.PseudoElement{Kind: css_ast.PseudoElCustom, Name: name}}}, true
	}

	if structKind, ok := css_ast.LookupStructuralPseudoClass(name); ok {
		return []css_ast.Component{{Kind: structKind, Loc: loc}}, true
	}
	if kind, prefix, ok := css_ast.LookupPseudoClassName(name); ok {
		return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
			PseudoClass: &css_ast.PseudoClass{Kind: kind, Prefix: prefix}}}, true
	}
	p.warnUnsupportedPseudo(r, name)
	return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
		PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoCustom, Name: name}}}, true
}

func (p *parser) dispatchFunctionPseudo(loc logger.Loc, r logger.Range, name string, doubleColon bool) ([]css_ast.Component, bool) {
	lname := strings.ToLower(name)

	if doubleColon {
		switch lname {
		case "part":
			p.skipWhitespace()
			var parts []string
			for {
				if !p.peek(css_lexer.TIdent) {
					p.unexpected()
					return nil, false
				}
				parts = append(parts, p.decoded())
				p.advance()
				p.skipWhitespace()
				if p.peek(css_lexer.TCloseParen) {
					break
				}
			}
			if !p.expect(css_lexer.TCloseParen) {
				return nil, false
			}
			return []css_ast.Component{{Kind: css_ast.KindPart, Parts: parts, Loc: loc}}, true

		case "cue":
			sel, ok := p.parseCompoundSelectorAsList()
			if !ok {
				return nil, false
			}
			if !p.expect(css_lexer.TCloseParen) {
				return nil, false
			}
			return []css_ast.Component{{Kind: css_ast.KindPseudoElement, Loc: loc,
				PseudoElement: &css_ast.PseudoElement{Kind: css_ast.PseudoElCueFunction, Selector: sel}}}, true

		case "cue-region":
			sel, ok := p.parseCompoundSelectorAsList()
			if !ok {
				return nil, false
			}
			if !p.expect(css_lexer.TCloseParen) {
				return nil, false
			}
			return []css_ast.Component{{Kind: css_ast.KindPseudoElement, Loc: loc,
				PseudoElement: &css_ast.PseudoElement{Kind: css_ast.PseudoElCueRegionFunction, Selector: sel}}}, true

		case "slotted":
			return p.dispatchFunctionPseudo(loc, r, name, false)
		}

		tokens, ok := p.captureAnyValue()
		if !ok {
			return nil, false
		}
		p.warnUnsupportedPseudo(r, name)
		return []css_ast.Component{{Kind: css_ast.KindPseudoElement, Loc: loc,
			PseudoElement: &css_ast.PseudoElement{Kind: css_ast.PseudoElCustomFunction, Name: name, Tokens: tokens}}}, true
	}

	switch lname {
	case "is", "matches":
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindIs, Selectors: list, Loc: loc}}, true

	case "where":
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindWhere, Selectors: list, Loc: loc}}, true

	case "not":
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindNegation, Selectors: list, Loc: loc}}, true

	case "has":
		list, ok := p.parseParenSelectorList(selectorListOpts{AllowLeadingCombinator: true})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindHas, Selectors: list, Loc: loc}}, true

	case "-webkit-any", "-moz-any":
		prefix := css_ast.VendorWebKit
		if lname == "-moz-any" {
			prefix = css_ast.VendorMoz
		}
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindAny, Selectors: list, AnyPrefix: prefix, Loc: loc}}, true

	case "host":
		p.skipWhitespace()
		var list *css_ast.SelectorList
		if !p.peek(css_lexer.TCloseParen) {
			comps, ok := p.parseCompoundSelector()
			if !ok {
				return nil, false
			}
			list = &css_ast.SelectorList{Selectors: []css_ast.Selector{{Components: comps}}}
			p.skipWhitespace()
		}
		if !p.expect(css_lexer.TCloseParen) {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindHost, Selectors: list, Loc: loc}}, true

	case "slotted":
		sel, ok := p.parseCompoundSelectorAsList()
		if !ok {
			return nil, false
		}
		if !p.expect(css_lexer.TCloseParen) {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindSlotted, Selectors: sel, Loc: loc}}, true

	case "lang":
		langs, ok := p.parseLangList()
		if !ok {
			return nil, false
		}
		if !p.expect(css_lexer.TCloseParen) {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoLang, Languages: langs}}}, true

	case "dir":
		p.skipWhitespace()
		if !p.peek(css_lexer.TIdent) {
			p.unexpected()
			return nil, false
		}
		dirText := strings.ToLower(p.decoded())
		p.advance()
		p.skipWhitespace()
		if !p.expect(css_lexer.TCloseParen) {
			return nil, false
		}
		dir := css_ast.Ltr
		if dirText == "rtl" {
			dir = css_ast.Rtl
		}
		return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoDir, Direction: dir}}}, true

	case "local":
		if p.options.CSSModules == nil {
			break
		}
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoLocal, Selector: list}}}, true

	case "global":
		if p.options.CSSModules == nil {
			break
		}
		list, ok := p.parseParenSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoGlobal, Selector: list}}}, true

	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type", "nth-col", "nth-last-col":
		kind := nthFunctionKind(lname)
		allowOf := lname == "nth-child" || lname == "nth-last-child"
		nth, ok := p.parseNthIndex(allowOf)
		if !ok {
			return nil, false
		}
		if !p.expect(css_lexer.TCloseParen) {
			return nil, false
		}
		return []css_ast.Component{{Kind: kind, Nth: nth, Loc: loc}}, true
	}

	tokens, ok := p.captureAnyValue()
	if !ok {
		return nil, false
	}
	p.warnUnsupportedPseudo(r, name)
	return []css_ast.Component{{Kind: css_ast.KindNonTSPseudoClass, Loc: loc,
		PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoCustomFunction, Name: name, Tokens: tokens}}}, true
}

func nthFunctionKind(name string) css_ast.ComponentKind {
	switch name {
	case "nth-child":
		return css_ast.KindNthChild
	case "nth-last-child":
		return css_ast.KindNthLastChild
	case "nth-of-type":
		return css_ast.KindNthOfType
	case "nth-last-of-type":
		return css_ast.KindNthLastOfType
	case "nth-col":
		return css_ast.KindNthCol
	case "nth-last-col":
		return css_ast.KindNthLastCol
	}
	return css_ast.KindNthChild
}

func (p *parser) parseLangList() ([]string, bool) {
	p.skipWhitespace()
	var langs []string
	for {
		var s string
		switch p.current().Kind {
		case css_lexer.TIdent, css_lexer.TString:
			s = p.decoded()
			p.advance()
		default:
			p.unexpected()
			return nil, false
		}
		langs = append(langs, s)
		p.skipWhitespace()
		if !p.eat(css_lexer.TComma) {
			break
		}
		p.skipWhitespace()
	}
	return langs, true
}

// parseNthIndex hand-parses the An+B microsyntax by re-reading the raw
// source text between here and the closing paren (or the "of" keyword):
// the CSS tokenizer splits "2n+1" and "-n" into varying token sequences
// depending on surrounding whitespace, so matching against the decoded
// text directly is far more robust than enumerating token shapes.
func (p *parser) parseNthIndex(allowOf bool) (*css_ast.NthIndex, bool) {
	p.skipWhitespace()
	start := p.current().Range.Loc.Start
	end := start

	for {
		if p.peek(css_lexer.TCloseParen) {
			break
		}
		if allowOf && p.peek(css_lexer.TIdent) && strings.EqualFold(p.decoded(), "of") {
			break
		}
		if p.peek(css_lexer.TEndOfFile) {
			p.unexpected()
			return nil, false
		}
		end = p.current().Range.End()
		p.advance()
	}

	text := p.source[start:end]
	a, b, ok := parseAnPlusB(text)
	if !ok {
		p.log.AddError(logger.Range{Loc: logger.Loc{Start: start}, Len: end - start}, p.filename,
			fmt.Sprintf("Invalid An+B index %q", text))
		return nil, false
	}
	nth := &css_ast.NthIndex{A: a, B: b}

	p.skipWhitespace()
	if allowOf && p.peek(css_lexer.TIdent) && strings.EqualFold(p.decoded(), "of") {
		p.advance()
		p.skipWhitespace()
		list, ok := p.parseSelectorList(selectorListOpts{})
		if !ok {
			return nil, false
		}
		nth.Of = &css_ast.SelectorList{Selectors: list}
	}

	return nth, true
}

func parseAnPlusB(s string) (a, b int, ok bool) {
	s = strings.Join(strings.Fields(s), "")
	switch strings.ToLower(s) {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	}

	ls := strings.ToLower(s)
	nIdx := strings.IndexByte(ls, 'n')
	if nIdx < 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		return 0, n, true
	}

	aPart := s[:nIdx]
	bPart := s[nIdx+1:]

	switch aPart {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		n, err := strconv.Atoi(aPart)
		if err != nil {
			return 0, 0, false
		}
		a = n
	}

	if bPart == "" {
		return a, 0, true
	}

	sign := 1
	switch bPart[0] {
	case '+':
		bPart = bPart[1:]
	case '-':
		sign = -1
		bPart = bPart[1:]
	default:
		return 0, 0, false
	}
	n, err := strconv.Atoi(bPart)
	if err != nil {
		return 0, 0, false
	}
	return a, sign * n, true
}

// captureAnyValue consumes a balanced run of tokens up to and including
// the matching close paren, for functional pseudo-classes/elements this
// package doesn't otherwise understand. The captured text round-trips
// through serialization unmodified.
func (p *parser) captureAnyValue() ([]css_ast.Token, bool) {
	start := p.current().Range.Loc.Start
	depth := 0
	for {
		switch p.current().Kind {
		case css_lexer.TEndOfFile:
			p.unexpected()
			return nil, false
		case css_lexer.TOpenParen, css_lexer.TFunction:
			depth++
		case css_lexer.TCloseParen:
			if depth == 0 {
				end := p.current().Range.Loc.Start
				text := p.source[start:end]
				p.advance()
				return []css_ast.Token{{Text: text}}, true
			}
			depth--
		}
		p.advance()
	}
}
