package css_ast

// IsEquivalent reports whether a and b are the same selector list modulo
// vendor-prefix differences on prefixable pseudo-classes/elements
// (spec.md §4.5). Used by the stylesheet engine (out of scope here) to
// merge prefixed duplicates it would otherwise emit as separate rules.
func IsEquivalent(a, b SelectorList) bool {
	if len(a.Selectors) != len(b.Selectors) {
		return false
	}
	for i := range a.Selectors {
		if !selectorIsEquivalent(a.Selectors[i], b.Selectors[i]) {
			return false
		}
	}
	return true
}

func selectorIsEquivalent(a, b Selector) bool {
	if len(a.Components) != len(b.Components) {
		return false
	}
	for i := range a.Components {
		if !componentIsEquivalent(a.Components[i], b.Components[i]) {
			return false
		}
	}
	return true
}

func componentIsEquivalent(a, b Component) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNonTSPseudoClass:
		return pseudoClassIsEquivalent(a.PseudoClass, b.PseudoClass)
	case KindPseudoElement:
		return pseudoElementIsEquivalent(a.PseudoElement, b.PseudoElement)
	case KindIs, KindWhere, KindNegation, KindHas, KindAny, KindHost, KindSlotted:
		return selectorListIsEquivalentPtr(a.Selectors, b.Selectors)
	default:
		return componentsShallowEqual(a, b)
	}
}

// pseudoClassIsEquivalent treats all vendor-prefix variants of the same
// prefixable pseudo-class as equivalent to each other — the whole point of
// the query is deciding whether two differently-prefixed copies of one
// rule can collapse into one.
func pseudoClassIsEquivalent(a, b *PseudoClass) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PseudoLang:
		return stringSlicesEqual(a.Languages, b.Languages)
	case PseudoDir:
		return a.Direction == b.Direction
	case PseudoLocal, PseudoGlobal:
		return selectorListIsEquivalentPtr(a.Selector, b.Selector)
	case PseudoCustom:
		return a.Name == b.Name
	case PseudoCustomFunction:
		return a.Name == b.Name && tokensEqual(a.Tokens, b.Tokens)
	default:
		return true // prefix difference only; already matched on Kind
	}
}

func pseudoElementIsEquivalent(a, b *PseudoElement) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PseudoElCueFunction, PseudoElCueRegionFunction:
		return selectorListIsEquivalentPtr(a.Selector, b.Selector)
	case PseudoElCustom:
		return a.Name == b.Name
	case PseudoElCustomFunction:
		return a.Name == b.Name && tokensEqual(a.Tokens, b.Tokens)
	default:
		return true
	}
}

func selectorListIsEquivalentPtr(a, b *SelectorList) bool {
	if a == nil || b == nil {
		return a == b
	}
	return IsEquivalent(*a, *b)
}

func componentsShallowEqual(a, b Component) bool {
	if a.Name != b.Name || a.NamespaceURL != b.NamespaceURL || a.Combinator != b.Combinator || a.AnyPrefix != b.AnyPrefix {
		return false
	}
	if (a.TypeSelector == nil) != (b.TypeSelector == nil) {
		return false
	}
	if a.TypeSelector != nil && (*a.TypeSelector != *b.TypeSelector) {
		return false
	}
	if (a.Attribute == nil) != (b.Attribute == nil) {
		return false
	}
	if a.Attribute != nil && *a.Attribute != *b.Attribute {
		return false
	}
	if (a.Nth == nil) != (b.Nth == nil) {
		return false
	}
	if a.Nth != nil {
		if a.Nth.A != b.Nth.A || a.Nth.B != b.Nth.B {
			return false
		}
		if !selectorListIsEquivalentPtr(a.Nth.Of, b.Nth.Of) {
			return false
		}
	}
	if !selectorListIsEquivalentPtr(a.Selectors, b.Selectors) {
		return false
	}
	if !stringSlicesEqual(a.Parts, b.Parts) {
		return false
	}
	return true
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Text != b[i].Text || a[i].HasWhitespaceAfter != b[i].HasWhitespaceAfter {
			return false
		}
		if !tokensEqual(a[i].Children, b[i].Children) {
			return false
		}
	}
	return true
}

// IsUnused reports whether every selector in list contains at least one
// class or ID token present in unusedSymbols — used by dead-code
// elimination to drop rules whose selector can never match after the
// symbols it targets were tree-shaken out. Recurses into :is/:where/:any
// argument lists; a bare Nesting token counts as "unused" only when the
// caller already knows its enclosing parent rule is unused.
func IsUnused(list SelectorList, unusedSymbols map[string]bool, parentIsUnused bool) bool {
	if len(unusedSymbols) == 0 {
		return false
	}
	for _, sel := range list.Selectors {
		if !selectorReferencesUnused(sel, unusedSymbols, parentIsUnused) {
			return false
		}
	}
	return true
}

func selectorReferencesUnused(sel Selector, unusedSymbols map[string]bool, parentIsUnused bool) bool {
	for _, c := range sel.Components {
		switch c.Kind {
		case KindClass, KindID:
			if unusedSymbols[c.Name] {
				return true
			}
		case KindIs, KindWhere, KindAny:
			if c.Selectors != nil && IsUnused(*c.Selectors, unusedSymbols, parentIsUnused) {
				return true
			}
		case KindNesting:
			if parentIsUnused {
				return true
			}
		}
	}
	return false
}
