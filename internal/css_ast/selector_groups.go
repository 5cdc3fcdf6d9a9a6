package css_ast

// CompoundGroup is one compound selector together with the combinator
// that connects it to its neighbor. Which neighbor depends on which
// accessor produced the group; see Selector.Groups (match order) and
// Selector.ParseOrderGroups (parse order).
type CompoundGroup struct {
	Components []Component

	// Combinator, HasCombinator: set by Groups(). The combinator linking
	// this group to the NEXT group in match order (i.e. the group one
	// step further left in the original input).
	Combinator    Combinator
	HasCombinator bool

	// PrecedingCombinator, HasPrecedingCombinator: set by
	// ParseOrderGroups(). The combinator written immediately before this
	// group in the original left-to-right input text.
	PrecedingCombinator    Combinator
	HasPrecedingCombinator bool
}

// Groups splits the flat, match-order Components slice on KindCombinator
// boundaries. The first returned group is the rightmost (key) compound;
// each group's Combinator field names the combinator written between it
// and the next group (which sits one step further left in the input).
// A relative selector's leading combinator (":has(> a)") is stored last,
// so the leftmost group carries it in Combinator with no group after it.
func (s Selector) Groups() []CompoundGroup {
	var groups []CompoundGroup
	var cur []Component
	for _, c := range s.Components {
		if c.Kind == KindCombinator {
			groups = append(groups, CompoundGroup{Components: cur, Combinator: c.Combinator, HasCombinator: true})
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 || len(groups) == 0 {
		groups = append(groups, CompoundGroup{Components: cur})
	}
	return groups
}

// ParseOrderGroups returns the same compound groups as Groups, reordered
// left-to-right the way an author wrote them (and the way the Serializer
// must emit them). Each group's PrecedingCombinator is the combinator
// written immediately before it, if any.
func (s Selector) ParseOrderGroups() []CompoundGroup {
	match := s.Groups()
	n := len(match)
	out := make([]CompoundGroup, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = CompoundGroup{Components: match[i].Components}
	}
	for i := 0; i < n; i++ {
		if match[i].HasCombinator {
			out[n-1-i].PrecedingCombinator = match[i].Combinator
			out[n-1-i].HasPrecedingCombinator = true
		}
	}
	return out
}

// BuildSelectorFromParseOrder is the inverse of ParseOrderGroups: it packs
// compound groups written left-to-right (plus the combinator preceding
// each one after the first, and a leading combinator on the first group
// when it has one) into the flat, match-order Components slice a Selector
// stores internally.
func BuildSelectorFromParseOrder(groups []CompoundGroup) Selector {
	var comps []Component
	for i := len(groups) - 1; i >= 0; i-- {
		comps = append(comps, groups[i].Components...)
		if i > 0 || groups[i].HasPrecedingCombinator {
			comps = append(comps, Component{Kind: KindCombinator, Combinator: groups[i].PrecedingCombinator})
		}
	}
	return Selector{Components: comps}
}

// ChildLists returns the nested SelectorLists a component carries: the
// argument list of :is, :where, :not, :has, :any, :host(sel) and
// ::slotted(), the inner list of :local()/:global(), ::cue(sel) and
// ::cue-region(sel), and the "of" list of the :nth-*() forms that take
// one. Every other component, :lang() and :dir() included, yields nil.
func (c Component) ChildLists() []*SelectorList {
	switch c.Kind {
	case KindIs, KindWhere, KindNegation, KindHas, KindAny, KindHost, KindSlotted:
		if c.Selectors != nil {
			return []*SelectorList{c.Selectors}
		}
	case KindNonTSPseudoClass:
		if c.PseudoClass != nil && (c.PseudoClass.Kind == PseudoLocal || c.PseudoClass.Kind == PseudoGlobal) && c.PseudoClass.Selector != nil {
			return []*SelectorList{c.PseudoClass.Selector}
		}
	case KindPseudoElement:
		if c.PseudoElement != nil && c.PseudoElement.Selector != nil {
			return []*SelectorList{c.PseudoElement.Selector}
		}
	case KindNthChild, KindNthLastChild, KindNthOfType, KindNthLastOfType:
		if c.Nth != nil && c.Nth.Of != nil {
			return []*SelectorList{c.Nth.Of}
		}
	}
	return nil
}

// IsCombinatorFree reports whether every selector in the list has a
// single compound group (no combinators at all, synthetic or textual).
// Used by the Downleveler, which adds the AnyPseudo prefix for an
// unsupported :is() only when every branch is combinator-free.
func (l *SelectorList) IsCombinatorFree() bool {
	if l == nil {
		return true
	}
	for _, sel := range l.Selectors {
		for _, c := range sel.Components {
			if c.Kind == KindCombinator {
				return false
			}
		}
	}
	return true
}

// HasTypeSelector reports whether the rightmost (key) compound of sel
// carries a LocalName or ExplicitUniversalType component.
func (sel Selector) HasTypeSelector() bool {
	groups := sel.Groups()
	if len(groups) == 0 {
		return false
	}
	for _, c := range groups[0].Components {
		if c.Kind == KindLocalName || c.Kind == KindExplicitUniversalType {
			return true
		}
	}
	return false
}
