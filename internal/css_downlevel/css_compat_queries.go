package css_downlevel

import (
	"github.com/vladinator1000/cssselect/internal/compat"
	"github.com/vladinator1000/cssselect/internal/css_ast"
)

// IsCompatible reports whether every component in list requires a feature
// the given targets support (spec.md §4.5). It does not recurse into the
// argument lists of :is/:where/:has/:not/:any — the wrapper component
// itself already maps to a feature (CssMatchesPseudo, CssHas, ...) the way
// the source this is grounded on treats it, treating the inner list as an
// opaque argument rather than walking into it a second time. An absent
// targets set can never be "compatible" with a non-trivial feature; plain
// structural atoms (ID/class/local-name) never require a feature at all
// and so are compatible with or without targets.
func IsCompatible(list css_ast.SelectorList, targets *compat.Browsers, oracle compat.Oracle) bool {
	for _, sel := range list.Selectors {
		for _, c := range sel.Components {
			feature, required, alwaysIncompatible := featureForComponent(c)
			if alwaysIncompatible {
				return false
			}
			if !required {
				continue
			}
			if targets == nil || !oracle.IsCompatible(feature, targets) {
				return false
			}
		}
	}
	return true
}

// featureForComponent returns the feature gating c's unprefixed/standard
// form. required is false for components with no feature gate at all
// (always compatible: ID, class, local name, synthetic combinators).
// alwaysIncompatible is true for components the source this is grounded on
// has no compatibility data for at all (Part, Where, any explicitly
// vendor-prefixed pseudo spelled that way in the source text, the
// experimental/no-support pseudo-classes, and any Custom fallback) — per
// spec.md §9's open question, this conservative "custom disables
// everything" behavior is preserved as-is rather than softened.
func featureForComponent(c css_ast.Component) (feature compat.Feature, required bool, alwaysIncompatible bool) {
	switch c.Kind {
	case css_ast.KindID, css_ast.KindClass, css_ast.KindLocalName:
		return 0, false, false

	case css_ast.KindExplicitNoNamespace, css_ast.KindExplicitAnyNamespace,
		css_ast.KindDefaultNamespace, css_ast.KindNamespace:
		return compat.CssNamespaces, true, false

	case css_ast.KindExplicitUniversalType:
		return compat.CssSel2, true, false

	case css_ast.KindAttributeInNoNamespaceExists:
		return compat.CssSel2, true, false

	case css_ast.KindAttributeInNoNamespace, css_ast.KindAttributeOther:
		if c.Attribute == nil {
			return 0, false, false
		}
		if c.Attribute.Operator == css_ast.AttrExists {
			return compat.CssSel2, true, false
		}
		if c.Attribute.CaseSensitivity == css_ast.CaseInsensitive {
			return compat.CssCaseInsensitive, true, false
		}
		switch c.Attribute.Operator {
		case css_ast.AttrEqual, css_ast.AttrIncludes, css_ast.AttrDashMatch:
			return compat.CssSel2, true, false
		default:
			return compat.CssSel3, true, false
		}

	case css_ast.KindFirstChild:
		return compat.CssSel2, true, false

	case css_ast.KindEmpty, css_ast.KindFirstOfType, css_ast.KindLastChild, css_ast.KindLastOfType,
		css_ast.KindNegation, css_ast.KindNthChild, css_ast.KindNthLastChild, css_ast.KindNthCol,
		css_ast.KindNthLastCol, css_ast.KindNthLastOfType, css_ast.KindNthOfType,
		css_ast.KindOnlyChild, css_ast.KindOnlyOfType, css_ast.KindRoot:
		return compat.CssSel3, true, false

	case css_ast.KindIs, css_ast.KindNesting:
		return compat.CssMatchesPseudo, true, false

	case css_ast.KindAny:
		return compat.AnyPseudo, true, false

	case css_ast.KindHas:
		return compat.CssHas, true, false

	case css_ast.KindScope, css_ast.KindHost, css_ast.KindSlotted:
		return compat.Shadowdomv1, true, false

	case css_ast.KindPart, css_ast.KindWhere:
		return 0, false, true

	case css_ast.KindNonTSPseudoClass:
		return featureForPseudoClass(c.PseudoClass)

	case css_ast.KindPseudoElement:
		return featureForPseudoElement(c.PseudoElement)

	case css_ast.KindCombinator:
		switch c.Combinator {
		case css_ast.Child, css_ast.NextSibling:
			return compat.CssSel2, true, false
		case css_ast.LaterSibling:
			return compat.CssSel3, true, false
		default:
			return 0, false, false
		}
	}
	return 0, false, false
}

func featureForPseudoClass(pc *css_ast.PseudoClass) (compat.Feature, bool, bool) {
	if pc == nil {
		return 0, false, false
	}
	switch pc.Kind {
	case css_ast.PseudoLink, css_ast.PseudoVisited, css_ast.PseudoActive, css_ast.PseudoHover,
		css_ast.PseudoFocus, css_ast.PseudoLang:
		return compat.CssSel2, true, false
	case css_ast.PseudoChecked, css_ast.PseudoDisabled, css_ast.PseudoEnabled, css_ast.PseudoTarget:
		return compat.CssSel3, true, false
	case css_ast.PseudoAnyLink:
		if pc.Prefix.IsEmpty() {
			return compat.CssAnyLink, true, false
		}
	case css_ast.PseudoIndeterminate:
		return compat.CssIndeterminatePseudo, true, false
	case css_ast.PseudoFullscreen:
		if pc.Prefix.IsEmpty() {
			return compat.Fullscreen, true, false
		}
	case css_ast.PseudoFocusVisible:
		return compat.CssFocusVisible, true, false
	case css_ast.PseudoFocusWithin:
		return compat.CssFocusWithin, true, false
	case css_ast.PseudoDefault:
		return compat.CssDefaultPseudo, true, false
	case css_ast.PseudoDir:
		return compat.CssDirPseudo, true, false
	case css_ast.PseudoOptional:
		return compat.CssOptionalPseudo, true, false
	case css_ast.PseudoPlaceholderShown:
		if pc.Prefix.IsEmpty() {
			return compat.CssPlaceholderShown, true, false
		}
	case css_ast.PseudoReadOnly, css_ast.PseudoReadWrite:
		if pc.Prefix.IsEmpty() {
			return compat.CssReadOnlyWrite, true, false
		}
	case css_ast.PseudoValid, css_ast.PseudoInvalid, css_ast.PseudoRequired:
		return compat.FormValidation, true, false
	case css_ast.PseudoInRange, css_ast.PseudoOutOfRange:
		return compat.CssInOutOfRange, true, false
	case css_ast.PseudoAutofill:
		if pc.Prefix.IsEmpty() {
			return compat.CssAutofill, true, false
		}
	}
	// Experimental pseudo-classes with no browser-support data, explicitly
	// vendor-prefixed spellings of the above, WebKit scrollbar states,
	// CSS-modules pseudos, and Custom/CustomFunction all fall through here:
	// no data means "not compatible", never "compatible by default".
	return 0, false, true
}

func featureForPseudoElement(pe *css_ast.PseudoElement) (compat.Feature, bool, bool) {
	if pe == nil {
		return 0, false, false
	}
	switch pe.Kind {
	case css_ast.PseudoElAfter, css_ast.PseudoElBefore:
		return compat.CssGencontent, true, false
	case css_ast.PseudoElFirstLine:
		return compat.CssFirstLine, true, false
	case css_ast.PseudoElFirstLetter:
		return compat.CssFirstLetter, true, false
	case css_ast.PseudoElSelection:
		if pe.Prefix.IsEmpty() {
			return compat.CssSelection, true, false
		}
	case css_ast.PseudoElPlaceholder:
		if pe.Prefix.IsEmpty() {
			return compat.CssPlaceholder, true, false
		}
	case css_ast.PseudoElBackdrop:
		if pe.Prefix.IsEmpty() {
			return compat.Dialog, true, false
		}
	case css_ast.PseudoElCue:
		return compat.Cue, true, false
	case css_ast.PseudoElCueFunction:
		return compat.CueFunction, true, false
	}
	return 0, false, true
}

// GetPrefix returns the single vendor prefix consistently used throughout
// list, or VendorNone if multiple prefixes are mixed or none are present.
// List-bearing composites and Lang/Dir force VendorNone so the caller
// knows to run Downlevel rather than treat the list as already-settled
// (spec.md §4.5, §8 "Prefix consistency").
func GetPrefix(list css_ast.SelectorList) css_ast.VendorPrefix {
	var prefix css_ast.VendorPrefix
	for _, sel := range list.Selectors {
		for _, c := range sel.Components {
			p, forced := prefixOfComponent(c)
			if forced {
				return css_ast.VendorNone
			}
			if p.IsEmpty() {
				continue
			}
			if prefix.IsEmpty() || prefix == p {
				prefix = p
			} else {
				return css_ast.VendorNone
			}
		}
	}
	return prefix
}

// prefixOfComponent returns the vendor prefix a component carries, plus
// whether the component forces GetPrefix to report VendorNone outright.
// List-bearing composites and Lang/Dir never settle on a single real
// prefix, so they force rather than simply contributing an empty prefix.
func prefixOfComponent(c css_ast.Component) (prefix css_ast.VendorPrefix, forced bool) {
	switch c.Kind {
	case css_ast.KindIs, css_ast.KindWhere, css_ast.KindHas, css_ast.KindNegation:
		return css_ast.VendorNone, true
	case css_ast.KindAny:
		return c.AnyPrefix, false
	case css_ast.KindNonTSPseudoClass:
		if c.PseudoClass == nil {
			return css_ast.VendorNone, false
		}
		if c.PseudoClass.Kind == css_ast.PseudoLang || c.PseudoClass.Kind == css_ast.PseudoDir {
			return css_ast.VendorNone, true
		}
		return c.PseudoClass.Prefix, false
	case css_ast.KindPseudoElement:
		if c.PseudoElement == nil {
			return css_ast.VendorNone, false
		}
		return c.PseudoElement.Prefix, false
	}
	return css_ast.VendorNone, false
}
