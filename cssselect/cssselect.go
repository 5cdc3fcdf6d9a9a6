// Package cssselect is the public surface of the CSS selector subsystem:
// parse a selector list, query it, downlevel it against a target browser
// set, and serialize it back out. It is a thin composition layer over the
// internal packages — no selector semantics live here, only wiring.
package cssselect

import (
	"github.com/vladinator1000/cssselect/internal/compat"
	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/css_downlevel"
	"github.com/vladinator1000/cssselect/internal/css_modules"
	"github.com/vladinator1000/cssselect/internal/css_parser"
	"github.com/vladinator1000/cssselect/internal/css_printer"
	"github.com/vladinator1000/cssselect/internal/logger"
)

// Re-exported so a caller never has to import the internal packages
// directly to use this package's own function signatures.
type (
	SelectorList    = css_ast.SelectorList
	Selector        = css_ast.Selector
	VendorPrefix    = css_ast.VendorPrefix
	Browsers        = compat.Browsers
	Version         = compat.Version
	Oracle          = compat.Oracle
	CSSModuleRenamer = css_modules.Renamer
	ParserOptions   = css_parser.Options
	CSSModulesConfig = css_parser.CSSModulesConfig
	PrinterOptions  = css_printer.Options
	StyleContext    = css_printer.StyleContext
	UserActionPseudoClassRemap = css_printer.UserActionPseudoClassRemap
	Log             = logger.Log
)

// NewDeferLog creates a diagnostics sink suitable for Parse.
func NewDeferLog() Log { return logger.NewDeferLog() }

// Parse parses contents as a comma-separated selector list. ok is false
// if a syntax error aborted parsing; diagnostics are reported through log
// regardless (see logger.NewDeferLog).
func Parse(log Log, filename string, contents string, options ParserOptions) (SelectorList, bool) {
	return css_parser.Parse(log, filename, contents, options)
}

// Downlevel rewrites, in place, any construct in list the given targets
// don't support, returning the union of vendor prefixes the caller must
// emit a sibling rule for. A nil oracle defaults to compat.DefaultOracle{}.
func Downlevel(list *SelectorList, targets *Browsers, oracle Oracle) VendorPrefix {
	return css_downlevel.Downlevel(list, targets, orDefaultOracle(oracle))
}

// IsCompatible reports whether every construct in list is supported by
// targets, with no unrecognized (Custom/CustomFunction) pseudo present.
func IsCompatible(list SelectorList, targets *Browsers, oracle Oracle) bool {
	return css_downlevel.IsCompatible(list, targets, orDefaultOracle(oracle))
}

// IsEquivalent reports whether a and b are the same selector list modulo
// vendor-prefix differences on prefixable pseudo-classes/elements.
func IsEquivalent(a, b SelectorList) bool {
	return css_ast.IsEquivalent(a, b)
}

// GetPrefix returns the single vendor prefix consistently used throughout
// list, or the empty set if multiple prefixes are mixed or none present.
func GetPrefix(list SelectorList) VendorPrefix {
	return css_downlevel.GetPrefix(list)
}

// IsUnused reports whether every selector in list references at least one
// class or ID name present in unusedSymbols.
func IsUnused(list SelectorList, unusedSymbols map[string]bool, parentIsUnused bool) bool {
	return css_ast.IsUnused(list, unusedSymbols, parentIsUnused)
}

// SerializeSelectorList serializes a full comma-separated selector list.
func SerializeSelectorList(list SelectorList, options PrinterOptions) string {
	return css_printer.SerializeSelectorList(list, options)
}

// SerializeSelector serializes a single selector on its own.
func SerializeSelector(sel Selector, options PrinterOptions) string {
	return css_printer.SerializeSelector(sel, options)
}

func orDefaultOracle(o Oracle) Oracle {
	if o != nil {
		return o
	}
	return compat.DefaultOracle{}
}
