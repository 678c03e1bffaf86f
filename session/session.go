// Package session owns the editable text and the editing/placing state
// machine that drag gestures drive.
//
// All operations run to completion synchronously on the caller's goroutine.
// A Session is meant to be owned by a single UI loop and is not safe for
// concurrent use.
package session

import (
	"github.com/iw2rmb/varpad/catalog"
	"github.com/iw2rmb/varpad/slots"
	"github.com/iw2rmb/varpad/token"
)

// Mode selects which view the host renders. It never changes the text.
type Mode uint8

const (
	ModeEditing Mode = iota
	ModePlacing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModePlacing:
		return "placing"
	default:
		return "unknown"
	}
}

type Config struct {
	// Initial text.
	Text string

	// Variables offered for placement. A nil catalog offers nothing.
	Catalog catalog.Catalog

	// OnChange is called after every effective mutation or mode transition.
	OnChange func(Event)
}

// Session is the state of one editor: {text, mode}.
type Session struct {
	text    string
	mode    Mode
	source  string
	version uint64

	catalog  catalog.Catalog
	onChange func(Event)

	lastChange    Change
	hasLastChange bool
}

func New(cfg Config) *Session {
	return &Session{
		text:     cfg.Text,
		mode:     ModeEditing,
		catalog:  append(catalog.Catalog(nil), cfg.Catalog...),
		onChange: cfg.OnChange,
	}
}

func (s *Session) Text() string { return s.text }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Placing() bool { return s.mode == ModePlacing }

// Source returns the identifier of the variable being placed, or "" while
// editing.
func (s *Session) Source() string { return s.source }

// Version increases on every effective change.
func (s *Session) Version() uint64 { return s.version }

func (s *Session) Catalog() catalog.Catalog { return s.catalog }

// Used returns the identifiers currently placed in the text.
func (s *Session) Used() token.Set { return token.Identifiers(s.text) }

// Available returns the catalog variables not yet placed, in catalog order.
func (s *Session) Available() catalog.Catalog { return s.catalog.Available(s.text) }

// CanReset reports whether ResetVariables would do anything.
func (s *Session) CanReset() bool { return s.Used().Len() > 0 }

// Words returns the current word slots' words; see slots.Words.
func (s *Session) Words() []string { return slots.Words(s.text) }

// Edit replaces the text verbatim. Edits are only accepted while editing.
func (s *Session) Edit(text string) bool {
	if s.mode != ModeEditing || text == s.text {
		return false
	}
	s.setText(ChangeEdit, text, "", -1)
	return true
}

// Drop places the token for id at slot. ok reports whether a target slot
// was resolved at all. Drop is a no-op without a slot, for an identifier
// already in the text, and for an identifier the token grammar rejects.
func (s *Session) Drop(slot int, ok bool, id string) bool {
	if !ok || !token.IsIdentifier(id) {
		return false
	}
	if token.Contains(s.text, id) {
		return false
	}
	slot = slots.Clamp(s.text, slot)
	s.setText(ChangeInsert, slots.InsertAt(s.text, slot, token.Format(id)), id, slot)
	return true
}

// ResetVariables strips every token from the text. It is a no-op when the
// text has none.
func (s *Session) ResetVariables() bool {
	if !s.CanReset() {
		return false
	}
	s.setText(ChangeReset, token.Strip(s.text), "", -1)
	return true
}

// GestureStart enters placing mode for the variable source. A gesture that
// starts while another is active is ignored.
func (s *Session) GestureStart(source string) bool {
	if s.mode == ModePlacing {
		return false
	}
	s.setMode(ModePlacing, source)
	return true
}

// GestureCancel leaves placing mode without touching the text.
func (s *Session) GestureCancel() {
	if s.mode != ModePlacing {
		return
	}
	s.setMode(ModeEditing, "")
}

// GestureEnd leaves placing mode and drops source at slot. It reports
// whether the text changed.
func (s *Session) GestureEnd(source string, slot int, ok bool) bool {
	if s.mode != ModePlacing {
		return false
	}
	if source == "" {
		source = s.source
	}
	s.setMode(ModeEditing, "")
	return s.Drop(slot, ok, source)
}

func (s *Session) setText(kind ChangeKind, text, id string, slot int) {
	if text == s.text {
		return
	}
	ch := Change{
		Kind:          kind,
		VersionBefore: s.version,
		TextBefore:    s.text,
		Identifier:    id,
		Slot:          slot,
	}
	s.text = text
	s.version++
	ch.VersionAfter = s.version
	ch.TextAfter = s.text
	s.commit(ch)
}

func (s *Session) setMode(mode Mode, source string) {
	ch := Change{
		Kind:          ChangeMode,
		VersionBefore: s.version,
		TextBefore:    s.text,
		TextAfter:     s.text,
		Identifier:    source,
		Slot:          -1,
	}
	if mode == ModeEditing {
		ch.Identifier = s.source
	}
	s.mode = mode
	s.source = source
	s.version++
	ch.VersionAfter = s.version
	s.commit(ch)
}

func (s *Session) commit(ch Change) {
	s.lastChange = ch
	s.hasLastChange = true
	if s.onChange != nil {
		s.onChange(buildEvent(s, ch))
	}
}
