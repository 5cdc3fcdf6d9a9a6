package compat

import "github.com/vladinator1000/cssselect/internal/css_ast"

// cssTable records, per feature and per engine, the version ranges in
// which the *unprefixed* form of that feature is understood. Engines
// absent from a feature's map are treated as never supporting it
// unprefixed. AnyPseudo has no unprefixed form; its ranges mark where the
// prefixed :-webkit-any()/:-moz-any() spelling is understood instead.
// Data approximates real shipping history closely enough to
// exercise the downlevel/serialize paths the spec describes; it is not
// pinned to a single external source (see DESIGN.md).
var cssTable = map[Feature]map[Engine][]versionRange{
	CssSel2: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{1, 0, 0}}},
		IE: {{start: v{9, 0, 0}}}, IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{3, 1, 0}}},
	},
	CssSel3: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{3, 5, 0}}},
		IE: {{start: v{9, 0, 0}}}, IOS: {{start: v{3, 2, 0}}}, Opera: {{start: v{10, 0, 0}}}, Safari: {{start: v{3, 2, 0}}},
	},
	CssNamespaces: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{1, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{3, 1, 0}}},
	},
	CssNesting: {
		Chrome: {{start: v{112, 0, 0}}}, Edge: {{start: v{112, 0, 0}}}, Firefox: {{start: v{117, 0, 0}}},
		IOS: {{start: v{16, 4, 0}}}, Opera: {{start: v{98, 0, 0}}}, Safari: {{start: v{16, 4, 0}}},
	},
	CssMatchesPseudo: {
		Chrome: {{start: v{32, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{78, 0, 0}}},
		IOS: {{start: v{9, 0, 0}}}, Opera: {{start: v{19, 0, 0}}}, Safari: {{start: v{9, 0, 0}}},
	},
	AnyPseudo: {
		Chrome: {{start: v{15, 0, 0}, end: v{32, 0, 0}}}, IOS: {{start: v{4, 2, 0}, end: v{9, 0, 0}}},
		Safari: {{start: v{5, 1, 0}, end: v{9, 0, 0}}}, Firefox: {{start: v{4, 0, 0}, end: v{78, 0, 0}}},
	},
	CssHas: {
		Chrome: {{start: v{105, 0, 0}}}, Edge: {{start: v{105, 0, 0}}}, Firefox: {{start: v{121, 0, 0}}},
		IOS: {{start: v{15, 4, 0}}}, Opera: {{start: v{91, 0, 0}}}, Safari: {{start: v{15, 4, 0}}},
	},
	CssNotSelList: {
		Chrome: {{start: v{88, 0, 0}}}, Edge: {{start: v{88, 0, 0}}}, Firefox: {{start: v{84, 0, 0}}},
		IOS: {{start: v{9, 0, 0}}}, Opera: {{start: v{74, 0, 0}}}, Safari: {{start: v{9, 0, 0}}},
	},
	CssCaseInsensitive: {
		Chrome: {{start: v{49, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{47, 0, 0}}},
		IOS: {{start: v{9, 0, 0}}}, Opera: {{start: v{36, 0, 0}}}, Safari: {{start: v{9, 0, 0}}},
	},
	CssAnyLink: {
		Chrome: {{start: v{65, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{50, 0, 0}}},
		IOS: {{start: v{12, 0, 0}}}, Opera: {{start: v{52, 0, 0}}}, Safari: {{start: v{12, 0, 0}}},
	},
	CssFocusVisible: {
		Chrome: {{start: v{86, 0, 0}}}, Edge: {{start: v{86, 0, 0}}}, Firefox: {{start: v{85, 0, 0}}},
		IOS: {{start: v{15, 4, 0}}}, Opera: {{start: v{72, 0, 0}}}, Safari: {{start: v{15, 4, 0}}},
	},
	CssFocusWithin: {
		Chrome: {{start: v{60, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{52, 0, 0}}},
		IOS: {{start: v{11, 3, 0}}}, Opera: {{start: v{47, 0, 0}}}, Safari: {{start: v{11, 1, 0}}},
	},
	CssDirPseudo: {
		Firefox: {{start: v{49, 0, 0}}},
	},
	CssPlaceholderShown: {
		Chrome: {{start: v{47, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{51, 0, 0}}},
		IOS: {{start: v{9, 0, 0}}}, Opera: {{start: v{34, 0, 0}}}, Safari: {{start: v{9, 0, 0}}},
	},
	CssReadOnlyWrite: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{2, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{3, 1, 0}}},
	},
	CssIndeterminatePseudo: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{3, 6, 0}}},
		IOS: {{start: v{5, 0, 0}}}, Opera: {{start: v{9, 6, 0}}}, Safari: {{start: v{4, 0, 0}}},
	},
	CssDefaultPseudo: {
		Chrome: {{start: v{10, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{4, 0, 0}}},
		IOS: {{start: v{5, 0, 0}}}, Opera: {{start: v{11, 0, 0}}}, Safari: {{start: v{5, 0, 0}}},
	},
	CssOptionalPseudo: {
		Chrome: {{start: v{10, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{4, 0, 0}}},
		IOS: {{start: v{5, 0, 0}}}, Opera: {{start: v{11, 0, 0}}}, Safari: {{start: v{5, 0, 0}}},
	},
	FormValidation: {
		Chrome: {{start: v{10, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{4, 0, 0}}},
		IOS: {{start: v{5, 0, 0}}}, Opera: {{start: v{11, 0, 0}}}, Safari: {{start: v{5, 0, 0}}},
	},
	CssInOutOfRange: {
		Chrome: {{start: v{10, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{29, 0, 0}}},
		IOS: {{start: v{5, 0, 0}}}, Opera: {{start: v{11, 0, 0}}}, Safari: {{start: v{5, 0, 0}}},
	},
	CssAutofill: {
		Chrome: {{start: v{69, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{86, 0, 0}}},
		Safari: {{start: v{9, 0, 0}}},
	},
	CssPlaceholder: {
		Chrome: {{start: v{57, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{51, 0, 0}}},
		IOS: {{start: v{9, 0, 0}}}, Opera: {{start: v{44, 0, 0}}}, Safari: {{start: v{9, 0, 0}}},
	},
	CssSelection: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{62, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{1, 0, 0}}},
	},
	Fullscreen: {
		Chrome: {{start: v{71, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{64, 0, 0}}},
		Opera: {{start: v{58, 0, 0}}},
	},
	Dialog: {
		Chrome: {{start: v{37, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{98, 0, 0}}},
		IOS: {{start: v{15, 4, 0}}}, Opera: {{start: v{24, 0, 0}}}, Safari: {{start: v{15, 4, 0}}},
	},
	CssFirstLine: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{1, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{1, 0, 0}}},
	},
	CssFirstLetter: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{1, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{1, 0, 0}}},
	},
	CssGencontent: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{1, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 0, 0}}}, Safari: {{start: v{1, 0, 0}}},
	},
	CssMarkerPseudo: {
		Chrome: {{start: v{86, 0, 0}}}, Edge: {{start: v{86, 0, 0}}}, Firefox: {{start: v{68, 0, 0}}},
		IOS: {{start: v{11, 0, 0}}}, Opera: {{start: v{72, 0, 0}}}, Safari: {{start: v{11, 0, 0}}},
	},
	Cue: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Safari: {{start: v{6, 1, 0}}},
	},
	CueFunction: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}},
	},
	LangList: {
		Chrome: {{start: v{1, 0, 0}}}, Edge: {{start: v{12, 0, 0}}}, Firefox: {{start: v{4, 0, 0}}},
		IOS: {{start: v{1, 0, 0}}}, Opera: {{start: v{9, 6, 0}}}, Safari: {{start: v{3, 2, 0}}},
	},
	Shadowdomv1: {
		Chrome: {{start: v{53, 0, 0}}}, Edge: {{start: v{79, 0, 0}}}, Firefox: {{start: v{63, 0, 0}}},
		IOS: {{start: v{10, 0, 0}}}, Opera: {{start: v{40, 0, 0}}}, Safari: {{start: v{10, 0, 0}}},
	},
}

// prefixTable records, per feature and per engine, the vendor prefix
// required to reach this feature on engines that never (or not yet)
// shipped the unprefixed form within a version range reachable by
// ordinary targets. This is deliberately small: most features here were
// never meaningfully prefixed, matching lightningcss's own sparse
// prefixes::Feature table.
var prefixTable = map[Feature]map[Engine]css_ast.VendorPrefix{
	AnyPseudo: {
		Chrome:  css_ast.VendorWebKit,
		Firefox: css_ast.VendorMoz,
		IOS:     css_ast.VendorWebKit,
		Safari:  css_ast.VendorWebKit,
	},
	CssMatchesPseudo: {
		Chrome: css_ast.VendorWebKit,
		IOS:    css_ast.VendorWebKit,
		Safari: css_ast.VendorWebKit,
	},
	Fullscreen: {
		Chrome:  css_ast.VendorWebKit,
		Edge:    css_ast.VendorWebKit,
		Firefox: css_ast.VendorMoz,
		IOS:     css_ast.VendorWebKit,
		Safari:  css_ast.VendorWebKit,
	},
	CssPlaceholder: {
		Firefox: css_ast.VendorMoz,
	},
	CssPlaceholderShown: {
		// The historical quirk: -ms-input-placeholder is spelled with the
		// Moz prefix in the source this subsystem is grounded on. Preserved
		// as-is; see DESIGN.md Open Question.
		IE: css_ast.VendorMoz,
	},
	CssSelection: {
		Firefox: css_ast.VendorMoz,
	},
	CssAnyLink: {
		Firefox: css_ast.VendorMoz,
	},
}

// DefaultOracle is a concrete Compatibility Oracle backed by the literal
// version table above. It is the one compat.Oracle this module ships;
// a real deployment would supply one backed by a browserslist-style
// database instead.
type DefaultOracle struct{}

var _ Oracle = DefaultOracle{}

// IsCompatible reports whether every engine named in targets supports
// feature, unprefixed, at its targeted minimum version. An absent
// targets set is never compatible, matching the "no targets means don't
// downlevel, but also can't claim compatibility" rule used by
// is_compatible(selectors, targets) at the top level.
func (DefaultOracle) IsCompatible(feature Feature, targets *Browsers) bool {
	if targets == nil {
		return false
	}
	engines := targets.engines()
	if len(engines) == 0 {
		return false
	}
	ranges := cssTable[feature]
	for _, engine := range engines {
		version, _ := targets.versionFor(engine)
		engineRanges, ok := ranges[engine]
		if !ok || !isVersionSupported(engineRanges, version) {
			return false
		}
	}
	return true
}

// PrefixesFor returns the union of vendor prefixes needed to reach
// feature on any targeted engine that doesn't support the unprefixed
// form. For AnyPseudo, which exists only prefixed, the prefix is reported
// for the engines whose targeted version falls inside its cssTable ranges.
func (DefaultOracle) PrefixesFor(feature Feature, targets *Browsers) css_ast.VendorPrefix {
	var result css_ast.VendorPrefix
	if targets == nil {
		return result
	}
	ranges := cssTable[feature]
	prefixes := prefixTable[feature]
	for _, engine := range targets.engines() {
		version, _ := targets.versionFor(engine)
		supported := false
		if engineRanges, ok := ranges[engine]; ok {
			supported = isVersionSupported(engineRanges, version)
		}
		if supported != (feature == AnyPseudo) {
			continue
		}
		if prefix, ok := prefixes[engine]; ok {
			result |= prefix
		}
	}
	return result
}
