package css_ast

import "strings"

// PseudoClassNameEntry is one row of the fixed, ASCII-case-insensitive
// name table the Parser matches pseudo-class idents/functions against
// (spec.md §4.1). Name is the full spelling written after the colon,
// vendor prefix included (e.g. "-webkit-any-link"); Prefix names the
// vendor prefix this particular row's spelling implies (VendorNone for
// the standard spelling).
type PseudoClassNameEntry struct {
	Name   string
	Kind   PseudoClassKind
	Prefix VendorPrefix
}

// pseudoClassNames is the exhaustive table. Multiple rows may share a
// Kind (one per vendor-prefixed spelling plus the standard one); lookup
// is by Name, reverse lookup (for serialization) is by Kind+Prefix.
var pseudoClassNames = []PseudoClassNameEntry{
	{Name: "hover", Kind: PseudoHover},
	{Name: "active", Kind: PseudoActive},
	{Name: "focus", Kind: PseudoFocus},
	{Name: "focus-visible", Kind: PseudoFocusVisible},
	{Name: "focus-within", Kind: PseudoFocusWithin},
	{Name: "current", Kind: PseudoCurrent},
	{Name: "past", Kind: PseudoPast},
	{Name: "future", Kind: PseudoFuture},

	{Name: "any-link", Kind: PseudoAnyLink},
	{Name: "-webkit-any-link", Kind: PseudoAnyLink, Prefix: VendorWebKit},
	{Name: "-moz-any-link", Kind: PseudoAnyLink, Prefix: VendorMoz},
	{Name: "link", Kind: PseudoLink},
	{Name: "visited", Kind: PseudoVisited},
	{Name: "local-link", Kind: PseudoLocalLink},
	{Name: "target", Kind: PseudoTarget},
	{Name: "target-within", Kind: PseudoTargetWithin},

	{Name: "enabled", Kind: PseudoEnabled},
	{Name: "disabled", Kind: PseudoDisabled},
	{Name: "read-only", Kind: PseudoReadOnly},
	{Name: "-moz-read-only", Kind: PseudoReadOnly, Prefix: VendorMoz},
	{Name: "read-write", Kind: PseudoReadWrite},
	{Name: "-moz-read-write", Kind: PseudoReadWrite, Prefix: VendorMoz},
	{Name: "placeholder-shown", Kind: PseudoPlaceholderShown},
	{Name: "-ms-placeholder-shown", Kind: PseudoPlaceholderShown, Prefix: VendorMs},
	{Name: "default", Kind: PseudoDefault},
	{Name: "checked", Kind: PseudoChecked},
	{Name: "indeterminate", Kind: PseudoIndeterminate},
	{Name: "blank", Kind: PseudoBlank},
	{Name: "valid", Kind: PseudoValid},
	{Name: "invalid", Kind: PseudoInvalid},
	{Name: "in-range", Kind: PseudoInRange},
	{Name: "out-of-range", Kind: PseudoOutOfRange},
	{Name: "required", Kind: PseudoRequired},
	{Name: "optional", Kind: PseudoOptional},
	{Name: "user-invalid", Kind: PseudoUserInvalid},
	{Name: "-moz-ui-invalid", Kind: PseudoUserInvalid, Prefix: VendorMoz},
	{Name: "autofill", Kind: PseudoAutofill},
	{Name: "-webkit-autofill", Kind: PseudoAutofill, Prefix: VendorWebKit},

	{Name: "fullscreen", Kind: PseudoFullscreen},
	{Name: "-webkit-full-screen", Kind: PseudoFullscreen, Prefix: VendorWebKit},
	{Name: "-moz-full-screen", Kind: PseudoFullscreen, Prefix: VendorMoz},
	{Name: "-ms-fullscreen", Kind: PseudoFullscreen, Prefix: VendorMs},
	{Name: "defined", Kind: PseudoDefined},

	// The legacy single-colon spellings of what is now the ::placeholder
	// pseudo-element. The -ms- spelling is deliberately mapped to the Moz
	// prefix, not Ms: spec.md §9 Open Question, kept as-is.
	{Name: "-webkit-input-placeholder", Kind: PseudoPlaceholderWebKitInputPlaceholder, Prefix: VendorWebKit},
	{Name: "-moz-placeholder", Kind: PseudoPlaceholderWebKitInputPlaceholder, Prefix: VendorMoz},
	{Name: "-ms-input-placeholder", Kind: PseudoPlaceholderWebKitInputPlaceholder, Prefix: VendorMoz},

	{Name: "horizontal", Kind: PseudoHorizontal},
	{Name: "vertical", Kind: PseudoVertical},
	{Name: "decrement", Kind: PseudoDecrement},
	{Name: "increment", Kind: PseudoIncrement},
	{Name: "start", Kind: PseudoStart},
	{Name: "end", Kind: PseudoEnd},
	{Name: "double-button", Kind: PseudoDoubleButton},
	{Name: "single-button", Kind: PseudoSingleButton},
	{Name: "no-button", Kind: PseudoNoButton},
	{Name: "corner-present", Kind: PseudoCornerPresent},
	{Name: "window-inactive", Kind: PseudoWindowInactive},
}

// LookupPseudoClassName matches an ASCII-case-insensitive ident/function
// name against the fixed table. Ok is false for anything not in the
// table (Lang, Dir, Local, Global, and all list-bearing/structural forms
// are dispatched separately by the parser since they carry extra
// syntax); the caller falls back to PseudoCustom / PseudoCustomFunction.
func LookupPseudoClassName(name string) (PseudoClassKind, VendorPrefix, bool) {
	for _, e := range pseudoClassNames {
		if strings.EqualFold(e.Name, name) {
			return e.Kind, e.Prefix, true
		}
	}
	return 0, VendorNone, false
}

// NameForPseudoClass is the reverse lookup the Serializer uses: given a
// kind and the prefix that should be spelled (the printer's vendor-prefix
// override if set, else the pseudo-class's own stored prefix), return the
// ident text (without the leading ":"). Falls back to the first row for
// the kind if the requested prefix has no dedicated spelling.
func NameForPseudoClass(kind PseudoClassKind, prefix VendorPrefix) string {
	fallback := ""
	for _, e := range pseudoClassNames {
		if e.Kind != kind {
			continue
		}
		if e.Prefix == prefix {
			return e.Name
		}
		if fallback == "" {
			fallback = e.Name
		}
	}
	return fallback
}

type PseudoElementNameEntry struct {
	Name   string
	Kind   PseudoElementKind
	Prefix VendorPrefix
}

var pseudoElementNames = []PseudoElementNameEntry{
	{Name: "after", Kind: PseudoElAfter},
	{Name: "before", Kind: PseudoElBefore},
	{Name: "first-line", Kind: PseudoElFirstLine},
	{Name: "first-letter", Kind: PseudoElFirstLetter},

	{Name: "selection", Kind: PseudoElSelection},
	{Name: "-moz-selection", Kind: PseudoElSelection, Prefix: VendorMoz},

	{Name: "placeholder", Kind: PseudoElPlaceholder},
	{Name: "-webkit-input-placeholder", Kind: PseudoElPlaceholder, Prefix: VendorWebKit},

	{Name: "backdrop", Kind: PseudoElBackdrop},
	{Name: "-webkit-backdrop", Kind: PseudoElBackdrop, Prefix: VendorWebKit},

	{Name: "file-selector-button", Kind: PseudoElFileSelectorButton},
	{Name: "-webkit-file-upload-button", Kind: PseudoElFileSelectorButton, Prefix: VendorWebKit},
	{Name: "-ms-browse", Kind: PseudoElFileSelectorButton, Prefix: VendorMs},

	{Name: "-webkit-scrollbar", Kind: PseudoElWebKitScrollbar},
	{Name: "-webkit-scrollbar-button", Kind: PseudoElWebKitScrollbarButton},
	{Name: "-webkit-scrollbar-track", Kind: PseudoElWebKitScrollbarTrack},
	{Name: "-webkit-scrollbar-track-piece", Kind: PseudoElWebKitScrollbarTrackPiece},
	{Name: "-webkit-scrollbar-thumb", Kind: PseudoElWebKitScrollbarThumb},
	{Name: "-webkit-scrollbar-corner", Kind: PseudoElWebKitScrollbarCorner},
	{Name: "-webkit-resizer", Kind: PseudoElWebKitResizer},
	{Name: "-webkit-progress-bar", Kind: PseudoElWebKitProgressBar},
	{Name: "-webkit-progress-value", Kind: PseudoElWebKitProgressValue},
	{Name: "-webkit-progress-track", Kind: PseudoElWebKitProgressTrack},
	{Name: "-webkit-slider-thumb", Kind: PseudoElWebKitSliderThumb},
	{Name: "-webkit-slider-track", Kind: PseudoElWebKitSliderTrack},

	{Name: "cue", Kind: PseudoElCue},
	{Name: "cue-region", Kind: PseudoElCueRegion},
}

// legacySingleColonPseudoElements are the four Level 2 pseudo-elements
// that may, for legacy reasons, be written with a single leading colon
// (spec.md §4.2 rule 13): ":before" parses identically to "::before".
var legacySingleColonPseudoElements = map[string]bool{
	"before": true, "after": true, "first-line": true, "first-letter": true,
}

func IsLegacySingleColonPseudoElement(name string) bool {
	return legacySingleColonPseudoElements[strings.ToLower(name)]
}

func LookupPseudoElementName(name string) (PseudoElementKind, VendorPrefix, bool) {
	for _, e := range pseudoElementNames {
		if strings.EqualFold(e.Name, name) {
			return e.Kind, e.Prefix, true
		}
	}
	return 0, VendorNone, false
}

func NameForPseudoElement(kind PseudoElementKind, prefix VendorPrefix) string {
	fallback := ""
	for _, e := range pseudoElementNames {
		if e.Kind != kind {
			continue
		}
		if e.Prefix == prefix {
			return e.Name
		}
		if fallback == "" {
			fallback = e.Name
		}
	}
	return fallback
}

// structuralPseudoClassNames maps parenthesis-free pseudo-class names
// directly onto a Component's Kind — these are modeled as dedicated
// Component variants (spec.md §3), not as PseudoClass payloads, since
// they carry no data beyond their own identity.
var structuralPseudoClassNames = map[string]ComponentKind{
	"scope":         KindScope,
	"root":          KindRoot,
	"empty":         KindEmpty,
	"first-child":   KindFirstChild,
	"last-child":    KindLastChild,
	"only-child":    KindOnlyChild,
	"first-of-type": KindFirstOfType,
	"last-of-type":  KindLastOfType,
	"only-of-type":  KindOnlyOfType,
}

func LookupStructuralPseudoClass(name string) (ComponentKind, bool) {
	k, ok := structuralPseudoClassNames[strings.ToLower(name)]
	return k, ok
}

// NameForStructuralComponent is the reverse of LookupStructuralPseudoClass.
func NameForStructuralComponent(kind ComponentKind) string {
	for name, k := range structuralPseudoClassNames {
		if k == kind {
			return name
		}
	}
	return ""
}
