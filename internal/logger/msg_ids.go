package logger

// MsgID values for the warnings this subsystem can produce. Unlike errors,
// warnings are demoted diagnostics: parsing continues and the shared sink
// just accumulates the record.
const (
	MsgID_None MsgID = iota
	MsgID_CSS_UnsupportedPseudoClassOrElement
	MsgID_CSS_UnsupportedCSSNesting
)
