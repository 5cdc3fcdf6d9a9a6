// Package css_downlevel is the Downleveler: given a mutable selector list
// and a target browser set, it rewrites constructs the targets don't
// support into supported equivalents and returns the union of vendor
// prefixes the caller must emit sibling rules for (spec.md §4.4). It also
// hosts the compatibility-feature mapping shared with the "other queries"
// in spec.md §4.5 (IsCompatible, GetPrefix), since both need to answer
// "what Feature does this component require" against the same table.
package css_downlevel

import (
	"github.com/vladinator1000/cssselect/internal/compat"
	"github.com/vladinator1000/cssselect/internal/css_ast"
)

// rtlLanguages is the fixed RTL-language list :dir(rtl)/:dir(ltr) downlevel
// to when CssDirPseudo is unsupported, grounded on original_source's
// RTL_LANGS table.
var rtlLanguages = []string{
	"ae", "ar", "arc", "bcc", "bqi", "ckb", "dv", "fa", "glk", "he", "ku",
	"mzn", "nqo", "pnb", "ps", "sd", "ug", "ur", "yi",
}

// Downlevel mutates list in place, rewriting any component the targets
// don't support into a supported equivalent, and returns the union of
// vendor prefixes the caller must emit a sibling rule for (once per
// non-empty prefix, per spec.md §4.4's closing paragraph).
func Downlevel(list *css_ast.SelectorList, targets *compat.Browsers, oracle compat.Oracle) css_ast.VendorPrefix {
	var necessary css_ast.VendorPrefix
	for i := range list.Selectors {
		necessary |= downlevelSelector(&list.Selectors[i], targets, oracle)
	}
	return necessary
}

func downlevelSelector(sel *css_ast.Selector, targets *compat.Browsers, oracle compat.Oracle) css_ast.VendorPrefix {
	var necessary css_ast.VendorPrefix
	for i := range sel.Components {
		necessary |= downlevelComponent(&sel.Components[i], targets, oracle)
	}
	return necessary
}

func downlevelComponent(c *css_ast.Component, targets *compat.Browsers, oracle compat.Oracle) css_ast.VendorPrefix {
	switch c.Kind {
	case css_ast.KindNonTSPseudoClass:
		return downlevelPseudoClass(c, targets, oracle)

	case css_ast.KindPseudoElement:
		if c.PseudoElement != nil && c.PseudoElement.Prefix.IsEmpty() {
			if feature, ok := prefixableElementFeature(c.PseudoElement.Kind); ok {
				return oracle.PrefixesFor(feature, targets)
			}
		}
		return css_ast.VendorNone

	case css_ast.KindIs:
		necessary := Downlevel(c.Selectors, targets, oracle)
		if !oracle.IsCompatible(compat.CssMatchesPseudo, targets) && c.Selectors.IsCombinatorFree() {
			necessary |= oracle.PrefixesFor(compat.AnyPseudo, targets)
		}
		return necessary

	case css_ast.KindWhere, css_ast.KindAny, css_ast.KindNegation, css_ast.KindHas:
		if c.Selectors != nil {
			return Downlevel(c.Selectors, targets, oracle)
		}
		return css_ast.VendorNone

	default:
		return css_ast.VendorNone
	}
}

func downlevelPseudoClass(c *css_ast.Component, targets *compat.Browsers, oracle compat.Oracle) css_ast.VendorPrefix {
	pc := c.PseudoClass
	if pc == nil {
		return css_ast.VendorNone
	}

	switch pc.Kind {
	case css_ast.PseudoDir:
		if !oracle.IsCompatible(compat.CssDirPseudo, targets) {
			*c = downlevelDir(pc.Direction, targets, oracle)
			return downlevelComponent(c, targets, oracle)
		}
		return css_ast.VendorNone

	case css_ast.PseudoLang:
		if len(pc.Languages) > 1 && !oracle.IsCompatible(compat.LangList, targets) {
			*c = css_ast.Component{Kind: css_ast.KindIs, Loc: c.Loc, Selectors: langListToSelectors(pc.Languages)}
			return downlevelComponent(c, targets, oracle)
		}
		return css_ast.VendorNone

	default:
		if pc.Prefix.IsEmpty() {
			if feature, ok := prefixableClassFeature(pc.Kind); ok {
				return oracle.PrefixesFor(feature, targets)
			}
		}
		return css_ast.VendorNone
	}
}

// downlevelDir converts a :dir(ltr|rtl) pseudo-class into an equivalent
// :lang(...)-based component: a single multi-arg :lang if LangList is
// supported, else an :is(:lang(a), :lang(b), ...) (or :not(...) for ltr)
// that downlevelComponent recurses into so AnyPseudo-prefixing still
// applies on top if :is itself also needs it.
func downlevelDir(dir css_ast.Direction, targets *compat.Browsers, oracle compat.Oracle) css_ast.Component {
	if oracle.IsCompatible(compat.LangList, targets) {
		lang := css_ast.Component{Kind: css_ast.KindNonTSPseudoClass,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoLang, Languages: append([]string(nil), rtlLanguages...)}}
		if dir == css_ast.Ltr {
			return css_ast.Component{Kind: css_ast.KindNegation,
				Selectors: &css_ast.SelectorList{Selectors: []css_ast.Selector{{Components: []css_ast.Component{lang}}}}}
		}
		return lang
	}

	list := langListToSelectors(rtlLanguages)
	if dir == css_ast.Ltr {
		return css_ast.Component{Kind: css_ast.KindNegation, Selectors: list}
	}
	return css_ast.Component{Kind: css_ast.KindIs, Selectors: list}
}

func langListToSelectors(langs []string) *css_ast.SelectorList {
	out := make([]css_ast.Selector, len(langs))
	for i, lang := range langs {
		out[i] = css_ast.Selector{Components: []css_ast.Component{{
			Kind:        css_ast.KindNonTSPseudoClass,
			PseudoClass: &css_ast.PseudoClass{Kind: css_ast.PseudoLang, Languages: []string{lang}},
		}}}
	}
	return &css_ast.SelectorList{Selectors: out}
}

// prefixableClassFeature names the compat.Feature that gates the
// unprefixed spelling of a prefixable pseudo-class, for the subset
// get_necessary_prefixes() in the source this is grounded on actually
// covers (Fullscreen, AnyLink, ReadOnly, ReadWrite, PlaceholderShown,
// Autofill). Pseudo-classes not in this set are never prefixed by this
// subsystem's downleveler, matching the source's fallthrough.
func prefixableClassFeature(kind css_ast.PseudoClassKind) (compat.Feature, bool) {
	switch kind {
	case css_ast.PseudoFullscreen:
		return compat.Fullscreen, true
	case css_ast.PseudoAnyLink:
		return compat.CssAnyLink, true
	case css_ast.PseudoReadOnly, css_ast.PseudoReadWrite:
		return compat.CssReadOnlyWrite, true
	case css_ast.PseudoPlaceholderShown:
		return compat.CssPlaceholderShown, true
	case css_ast.PseudoAutofill:
		return compat.CssAutofill, true
	}
	return 0, false
}

// prefixableElementFeature is the pseudo-element counterpart: Selection,
// Placeholder, Backdrop, FileSelectorButton. FileSelectorButton has no
// corresponding tag in the closed compat.Feature set spec.md §4.3 defines,
// so it is intentionally excluded here rather than inventing one; see
// DESIGN.md.
func prefixableElementFeature(kind css_ast.PseudoElementKind) (compat.Feature, bool) {
	switch kind {
	case css_ast.PseudoElSelection:
		return compat.CssSelection, true
	case css_ast.PseudoElPlaceholder:
		return compat.CssPlaceholder, true
	case css_ast.PseudoElBackdrop:
		return compat.Dialog, true
	}
	return 0, false
}
