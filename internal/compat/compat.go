// Package compat is the Compatibility Oracle Interface: the abstract
// predicate that answers "is this selector feature supported by this
// target browser set" and "which vendor prefixes does it need there".
// The actual compatibility data is a concrete implementation of the
// interface (DefaultOracle in css_table.go), supplied the way an
// external database would be.
package compat

import "github.com/vladinator1000/cssselect/internal/css_ast"

// v is a three-part engine version, kept small (esbuild's own compat
// table uses this exact layout) since a table of these is held in
// memory for every engine/feature pair.
type v struct {
	major uint16
	minor uint8
	patch uint8
}

func versionLess(a, b v) bool {
	if a.major != b.major {
		return a.major < b.major
	}
	if a.minor != b.minor {
		return a.minor < b.minor
	}
	return a.patch < b.patch
}

// versionRange is inclusive of start, exclusive of end. A zero end means
// "no upper bound".
type versionRange struct {
	start v
	end   v
}

func isVersionSupported(ranges []versionRange, version v) bool {
	for _, r := range ranges {
		if !versionLess(version, r.start) && (r.end == (v{}) || versionLess(version, r.end)) {
			return true
		}
	}
	return false
}

// Engine identifies a browser engine a target set can name a minimum
// version for.
type Engine uint8

const (
	Chrome Engine = iota
	Edge
	Firefox
	IE
	IOS
	Opera
	Safari
)

// Browsers is a target set: the minimum version required per named
// engine. A nil pointer means that engine is not targeted at all.
type Browsers struct {
	Chrome  *Version
	Edge    *Version
	Firefox *Version
	IE      *Version
	IOS     *Version
	Opera   *Version
	Safari  *Version
}

// Version is the public, caller-facing version type (Browsers is part of
// PrinterOptions/ParserOptions, so it can't use the package-private v).
type Version struct {
	Major uint16
	Minor uint8
	Patch uint8
}

func (b *Browsers) versionFor(engine Engine) (v, bool) {
	if b == nil {
		return v{}, false
	}
	var ver *Version
	switch engine {
	case Chrome:
		ver = b.Chrome
	case Edge:
		ver = b.Edge
	case Firefox:
		ver = b.Firefox
	case IE:
		ver = b.IE
	case IOS:
		ver = b.IOS
	case Opera:
		ver = b.Opera
	case Safari:
		ver = b.Safari
	}
	if ver == nil {
		return v{}, false
	}
	return v{ver.Major, ver.Minor, ver.Patch}, true
}

// engines returns the set of engines actually named by the target set.
func (b *Browsers) engines() []Engine {
	if b == nil {
		return nil
	}
	all := []Engine{Chrome, Edge, Firefox, IE, IOS, Opera, Safari}
	out := make([]Engine, 0, len(all))
	for _, e := range all {
		if _, ok := b.versionFor(e); ok {
			out = append(out, e)
		}
	}
	return out
}

// Feature is the closed tag set of selector-level features the oracle
// can be asked about. It mirrors spec'd feature names one-for-one so
// downlevel and printer code can reference them directly.
type Feature uint64

const (
	CssSel2 Feature = 1 << iota
	CssSel3
	CssNamespaces
	CssNesting
	CssMatchesPseudo
	AnyPseudo
	CssHas
	CssNotSelList
	CssCaseInsensitive
	CssAnyLink
	CssFocusVisible
	CssFocusWithin
	CssDirPseudo
	CssPlaceholderShown
	CssReadOnlyWrite
	CssIndeterminatePseudo
	CssDefaultPseudo
	CssOptionalPseudo
	FormValidation
	CssInOutOfRange
	CssAutofill
	CssPlaceholder
	CssSelection
	Fullscreen
	Dialog
	CssFirstLine
	CssFirstLetter
	CssGencontent
	CssMarkerPseudo
	Cue
	CueFunction
	LangList
	Shadowdomv1
)

// Oracle is the Compatibility Oracle Interface (spec.md §4.3). It is
// consulted by both the Downleveler (to decide what must be rewritten)
// and the Serializer (to choose a spelling, e.g. "&" vs ":scope").
type Oracle interface {
	IsCompatible(feature Feature, targets *Browsers) bool
	PrefixesFor(feature Feature, targets *Browsers) css_ast.VendorPrefix
}
