// Package css_ast is the component model for CSS selector syntax: the
// algebraic data types for combinators, simple selectors, attribute
// selectors, pseudo-classes, pseudo-elements, and vendor prefixes.
//
// Selectors are stored in *match order* (right-to-left), the order an
// engine walks when matching an element upward through its ancestors.
// Serialization walks the tree in *parse order* (left-to-right) by
// splitting the flat Component slice on Combinator boundaries and
// reversing each group; see internal/css_printer.
package css_ast

import "github.com/vladinator1000/cssselect/internal/logger"

// Token is a minimal capture of a component value, used only as the
// fallback payload for pseudo-classes/elements this package doesn't
// otherwise model (Custom and CustomFunction) so that serialization can
// still round-trip input it doesn't understand structurally.
type Token struct {
	Text               string
	Children           []Token
	HasWhitespaceAfter bool
}

// VendorPrefix is a bit-set over {WebKit, Moz, Ms, O}. The zero value
// means "no prefix applicable" (spec calls this the empty set, not a
// distinct "none" tag).
type VendorPrefix uint8

const (
	VendorNone VendorPrefix = 0
	VendorWebKit VendorPrefix = 1 << iota
	VendorMoz
	VendorMs
	VendorO
)

func (p VendorPrefix) Contains(bit VendorPrefix) bool { return p&bit != 0 }
func (p VendorPrefix) IsEmpty() bool                  { return p == VendorNone }

// Count returns the number of set bits. Used by GetPrefix, which must
// return VendorNone when more than one prefix is mixed together.
func (p VendorPrefix) Count() int {
	n := 0
	for _, bit := range []VendorPrefix{VendorWebKit, VendorMoz, VendorMs, VendorO} {
		if p.Contains(bit) {
			n++
		}
	}
	return n
}

// Single returns the one set bit and true, or VendorNone and false if the
// set is empty or contains more than one bit.
func (p VendorPrefix) Single() (VendorPrefix, bool) {
	if p.Count() != 1 {
		return VendorNone, false
	}
	return p, true
}

func (p VendorPrefix) String() string {
	switch p {
	case VendorNone:
		return ""
	case VendorWebKit:
		return "-webkit-"
	case VendorMoz:
		return "-moz-"
	case VendorMs:
		return "-ms-"
	case VendorO:
		return "-o-"
	}
	return ""
}

// NamespacedName is an optionally-namespaced identifier, e.g. "svg|rect"
// or the bare local name "rect". A nil Prefix means no namespace prefix
// was written at all (distinct from an explicit empty prefix "|rect").
type NamespacedName struct {
	Prefix *string
	Name   string
}

// Combinator separates compound selectors. PseudoElement and
// SlotAssignment are synthetic markers: they partition a trailing
// pseudo-element or ::slotted() payload from its host compound without
// emitting combinator text.
type Combinator uint8

const (
	Descendant Combinator = iota
	Child
	NextSibling
	LaterSibling
	CombinatorPseudoElement
	CombinatorSlotAssignment
)

func (c Combinator) IsSynthetic() bool {
	return c == CombinatorPseudoElement || c == CombinatorSlotAssignment
}

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case NextSibling:
		return "+"
	case LaterSibling:
		return "~"
	}
	return ""
}

type AttrOperator uint8

const (
	AttrExists AttrOperator = iota
	AttrEqual               // =
	AttrIncludes            // ~=
	AttrDashMatch           // |=
	AttrPrefix              // ^=
	AttrSuffix              // $=
	AttrSubstring           // *=
)

func (op AttrOperator) String() string {
	switch op {
	case AttrEqual:
		return "="
	case AttrIncludes:
		return "~="
	case AttrDashMatch:
		return "|="
	case AttrPrefix:
		return "^="
	case AttrSuffix:
		return "$="
	case AttrSubstring:
		return "*="
	}
	return ""
}

type AttrCaseSensitivity uint8

const (
	CaseSensitivityDefault AttrCaseSensitivity = iota
	CaseInsensitive                             // trailing " i"
	ExplicitCaseSensitive                       // trailing " s"
)

// AttributeSelector is the payload shared by AttributeInNoNamespaceExists,
// AttributeInNoNamespace, and AttributeOther. NamespaceIsExplicit
// distinguishes "no namespace written" (local-name-only match) from an
// explicit namespace (named, "*", or "" all recorded on Name.Prefix).
type AttributeSelector struct {
	Name                NamespacedName
	NamespaceIsExplicit bool
	Operator            AttrOperator // meaningless when Kind is an Exists variant
	Value               string
	CaseSensitivity     AttrCaseSensitivity
}

// NthIndex is the An+B microsyntax plus its optional "of <selector-list>"
// clause, shared by every :nth-* component.
type NthIndex struct {
	A  int
	B  int
	Of *SelectorList
}

type ComponentKind uint8

const (
	KindLocalName ComponentKind = iota
	KindExplicitUniversalType
	KindID
	KindClass
	KindNesting
	KindScope
	KindRoot
	KindEmpty

	KindExplicitNoNamespace
	KindExplicitAnyNamespace
	KindDefaultNamespace
	KindNamespace

	KindAttributeInNoNamespaceExists
	KindAttributeInNoNamespace
	KindAttributeOther

	KindFirstChild
	KindLastChild
	KindOnlyChild
	KindFirstOfType
	KindLastOfType
	KindOnlyOfType
	KindNthChild
	KindNthLastChild
	KindNthOfType
	KindNthLastOfType
	KindNthCol
	KindNthLastCol

	KindIs
	KindWhere
	KindNegation
	KindHas
	KindAny

	KindHost
	KindSlotted
	KindPart

	KindCombinator

	KindNonTSPseudoClass
	KindPseudoElement
)

// Component is one atom within a compound selector. It is modeled as a
// single packed, tagged struct rather than one Go type per grammar
// variant: PseudoClass and PseudoElement alone cover dozens of forms, and
// a sum type with a Kind tag keeps dispatch as switch statements the
// compiler can check for exhaustiveness instead of forcing virtual calls
// through ~50 interface implementations.
type Component struct {
	Kind ComponentKind
	Loc  logger.Loc

	// KindLocalName / KindExplicitUniversalType: the type selector, "*"
	// for the universal type. KindNamespace: Name holds the prefix ident
	// (Prefix is unused); NamespaceURL holds the bound URL.
	TypeSelector *NamespacedName

	// KindID / KindClass: the identifier without its leading "#"/".".
	Name string

	// KindDefaultNamespace / KindNamespace: the namespace URL.
	NamespaceURL string

	Attribute *AttributeSelector

	Nth *NthIndex

	// KindIs / KindWhere / KindNegation / KindHas / KindAny: the argument
	// list. KindHost / KindSlotted: the (optional, for Host) inner
	// selector, wrapped in a one-element list when present.
	Selectors *SelectorList

	// KindAny: the vendor prefix from whichever spelling matched
	// (-webkit-any / -moz-any).
	AnyPrefix VendorPrefix

	// KindPart: the part identifiers.
	Parts []string

	Combinator Combinator

	PseudoClass   *PseudoClass
	PseudoElement *PseudoElement
}

// Selector is a sequence of compound selectors joined by combinators,
// stored flat in match order: components of a compound group appear
// consecutively, followed by a KindCombinator component marking the
// boundary to the next group. A Selector always has at least one
// non-combinator component.
type Selector struct {
	Components []Component
}

// SelectorList is an ordered, comma-separated sequence of Selectors.
// Order is significant and preserved through serialization.
type SelectorList struct {
	Selectors []Selector
}

type Direction uint8

const (
	Ltr Direction = iota
	Rtl
)

type PseudoClassKind uint8

const (
	// User-action / UI states
	PseudoHover PseudoClassKind = iota
	PseudoActive
	PseudoFocus
	PseudoFocusVisible
	PseudoFocusWithin
	PseudoCurrent
	PseudoPast
	PseudoFuture

	// Linguistic / directional
	PseudoLang
	PseudoDir

	// Location
	PseudoAnyLink
	PseudoLink
	PseudoVisited
	PseudoLocalLink
	PseudoTarget
	PseudoTargetWithin
	PseudoScope

	// Input / form state
	PseudoEnabled
	PseudoDisabled
	PseudoReadOnly
	PseudoReadWrite
	PseudoPlaceholderShown
	PseudoDefault
	PseudoChecked
	PseudoIndeterminate
	PseudoBlank
	PseudoValid
	PseudoInvalid
	PseudoInRange
	PseudoOutOfRange
	PseudoRequired
	PseudoOptional
	PseudoUserInvalid
	PseudoAutofill

	// Resource / tree-structural (non-child-index) states
	PseudoFullscreen
	PseudoDefined
	PseudoPlaceholderWebKitInputPlaceholder // the -ms-input-placeholder quirk lands here with Prefix == VendorMoz

	// WebKit scrollbar sub-pseudo-classes (valid only adjacent to a
	// WebKitScrollbar pseudo-element; see IsValidAfterWebKitScrollbar).
	PseudoHorizontal
	PseudoVertical
	PseudoDecrement
	PseudoIncrement
	PseudoStart
	PseudoEnd
	PseudoDoubleButton
	PseudoSingleButton
	PseudoNoButton
	PseudoCornerPresent
	PseudoWindowInactive

	// CSS modules
	PseudoLocal
	PseudoGlobal

	// Fallback
	PseudoCustom
	PseudoCustomFunction
)

// PseudoClass is a tagged union over the ~50-variant pseudo-class
// grammar. Only the fields relevant to Kind are populated; this mirrors
// the packed-Token convention used for Component/Token rather than one
// struct type per variant.
type PseudoClass struct {
	Kind PseudoClassKind

	// Prefixable variants (Fullscreen, the placeholder-shown quirk, ...)
	// carry their own vendor prefix. VendorNone means unprefixed.
	Prefix VendorPrefix

	Languages []string  // PseudoLang
	Direction Direction  // PseudoDir

	Selector *SelectorList // PseudoLocal / PseudoGlobal

	Name   string  // PseudoCustom / PseudoCustomFunction
	Tokens []Token // PseudoCustomFunction argument tokens
}

type PseudoElementKind uint8

const (
	PseudoElAfter PseudoElementKind = iota
	PseudoElBefore
	PseudoElFirstLine
	PseudoElFirstLetter
	PseudoElSelection       // prefixable
	PseudoElPlaceholder     // prefixable
	PseudoElBackdrop        // prefixable
	PseudoElFileSelectorButton // prefixable

	// WebKit scrollbar sub-pseudo-elements
	PseudoElWebKitScrollbar
	PseudoElWebKitScrollbarButton
	PseudoElWebKitScrollbarTrack
	PseudoElWebKitScrollbarTrackPiece
	PseudoElWebKitScrollbarThumb
	PseudoElWebKitScrollbarCorner
	PseudoElWebKitResizer
	PseudoElWebKitProgressBar
	PseudoElWebKitProgressValue
	PseudoElWebKitProgressTrack
	PseudoElWebKitSliderThumb
	PseudoElWebKitSliderTrack

	PseudoElCue
	PseudoElCueFunction // ::cue(selector)
	PseudoElCueRegion
	PseudoElCueRegionFunction // ::cue-region(selector)

	PseudoElPart // ::part(idents) is modeled as a Component, not here; kept out

	PseudoElCustom
	PseudoElCustomFunction
)

// PseudoElement mirrors PseudoClass's packed-union shape.
type PseudoElement struct {
	Kind PseudoElementKind

	Prefix VendorPrefix

	Selector *SelectorList // PseudoElCueFunction / PseudoElCueRegionFunction

	Name   string
	Tokens []Token
}

// IsValidAfterWebKitScrollbar reports whether the given pseudo-class may
// directly follow a ::-webkit-scrollbar pseudo-element, per the fixed
// state-pseudo allow-list for that sub-grammar.
func IsValidAfterWebKitScrollbar(kind PseudoClassKind) bool {
	switch kind {
	case PseudoHorizontal, PseudoVertical, PseudoDecrement, PseudoIncrement,
		PseudoStart, PseudoEnd, PseudoDoubleButton, PseudoSingleButton,
		PseudoNoButton, PseudoCornerPresent, PseudoWindowInactive,
		PseudoEnabled, PseudoDisabled, PseudoHover, PseudoActive:
		return true
	}
	return false
}

// IsValidBeforeWebKitScrollbar reports whether a pseudo-element of the
// given kind may precede a WebKit scrollbar sub-pseudo in a compound
// selector. The sub-element family is flat, not nested, so only the
// ::-webkit-scrollbar root itself qualifies.
func IsValidBeforeWebKitScrollbar(kind PseudoElementKind) bool {
	return kind == PseudoElWebKitScrollbar
}
