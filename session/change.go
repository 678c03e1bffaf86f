package session

// ChangeKind identifies what produced a change.
type ChangeKind uint8

const (
	ChangeEdit ChangeKind = iota
	ChangeInsert
	ChangeReset
	ChangeMode
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeEdit:
		return "edit"
	case ChangeInsert:
		return "insert"
	case ChangeReset:
		return "reset"
	case ChangeMode:
		return "mode"
	default:
		return "unknown"
	}
}

// Change is a versioned record of one effective change.
//
// Identifier is the placed variable for ChangeInsert and the gesture source
// for ChangeMode. Slot is the clamped insertion slot for ChangeInsert and -1
// otherwise.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	TextBefore    string
	TextAfter     string
	Identifier    string
	Slot          int
}

// Event is what OnChange receives.
type Event struct {
	Change  Change
	Version uint64
	Mode    Mode
	Text    string

	// Variables still available after the change.
	Available int
}

// LastChange returns the most recent effective change.
func (s *Session) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return s.lastChange, true
}

func buildEvent(s *Session, ch Change) Event {
	return Event{
		Change:    ch,
		Version:   s.version,
		Mode:      s.mode,
		Text:      s.text,
		Available: len(s.Available()),
	}
}
