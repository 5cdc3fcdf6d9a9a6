// Package logger provides the diagnostic plumbing shared by the parser and
// serializer: source locations, structured messages, and a deferred sink
// that accumulates warnings for a single compilation.
package logger

import (
	"fmt"
	"sort"
	"sync"
)

// Loc is the 0-based byte offset of a location from the start of the input.
type Loc struct {
	Start int32
}

// Range is a Loc plus a byte length.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		panic("internal error")
	}
}

// MsgID tags a warning with a stable identifier so callers can filter or
// silence specific diagnostics. Only the subset this subsystem emits is
// defined; see msg_ids.go.
type MsgID = uint8

type MsgLocation struct {
	File   string
	Line   int // 1-based
	Column int // 0-based, in bytes
	Length int // in bytes
}

type MsgData struct {
	Text     string
	Location *MsgLocation
}

type Msg struct {
	Kind MsgKind
	ID   MsgID
	Data MsgData
}

func (msg Msg) String() string {
	if loc := msg.Data.Location; loc != nil {
		return fmt.Sprintf("%s: %s: %s", loc.File, msg.Kind, msg.Data.Text)
	}
	return fmt.Sprintf("%s: %s", msg.Kind, msg.Data.Text)
}

// SortableMsgs exists so callers can get deterministic output from Done,
// which is otherwise accumulated under a mutex in arbitrary push order.
type SortableMsgs []Msg

func (a SortableMsgs) Len() int      { return len(a) }
func (a SortableMsgs) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a SortableMsgs) Less(i, j int) bool {
	ai, aj := a[i], a[j]
	aiLoc, ajLoc := ai.Data.Location, aj.Data.Location
	if aiLoc == nil || ajLoc == nil {
		return aiLoc == nil && ajLoc != nil
	}
	if aiLoc.File != ajLoc.File {
		return aiLoc.File < ajLoc.File
	}
	if aiLoc.Line != ajLoc.Line {
		return aiLoc.Line < ajLoc.Line
	}
	if aiLoc.Column != ajLoc.Column {
		return aiLoc.Column < ajLoc.Column
	}
	return ai.Data.Text < aj.Data.Text
}

// Log is the shared warnings sink described by the concurrency model: a
// single producer (the parser) appends messages under exclusive access,
// and a reader drains them once via Done at the end of a compilation.
type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

// NewDeferLog creates a Log that buffers messages in memory instead of
// printing them immediately, matching this subsystem's "accumulate, drain
// once" warnings-sink lifecycle (spec'd as a single-producer, RW-excluded
// collection guarded for the duration of a single push).
func NewDeferLog() Log {
	var msgs SortableMsgs
	var mutex sync.Mutex
	var hasErrors bool

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			if msg.Kind == Error {
				hasErrors = true
			}
			msgs = append(msgs, msg)
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

func (log Log) AddError(r Range, file string, text string) {
	log.AddMsg(Msg{Kind: Error, Data: rangeData(r, file, text)})
}

func (log Log) AddErrorNoLoc(text string) {
	log.AddMsg(Msg{Kind: Error, Data: MsgData{Text: text}})
}

// AddWarningWithID appends a demoted diagnostic (an unrecognized but
// structurally valid pseudo-class/element) that must not abort parsing.
func (log Log) AddWarningWithID(id MsgID, r Range, file string, text string) {
	data := rangeData(r, file, text)
	log.AddMsg(Msg{Kind: Warning, ID: id, Data: data})
}

func rangeData(r Range, file string, text string) MsgData {
	return MsgData{
		Text: text,
		Location: &MsgLocation{
			File:   file,
			Column: int(r.Loc.Start),
			Length: int(r.Len),
		},
	}
}
