package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Keys not bound here go to the
// textarea while editing.
type KeyMap struct {
	// Pick starts keyboard placement of the n-th available variable
	// (alt+1 is the first).
	Pick key.Binding

	// Placing mode.
	SlotLeft, SlotRight key.Binding
	SlotFirst, SlotLast key.Binding
	Drop, Cancel        key.Binding

	Reset key.Binding
	Copy  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1…9", "place variable"),
		),

		SlotLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "slot left")),
		SlotRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "slot right")),
		SlotFirst: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first slot")),
		SlotLast:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last slot")),
		Drop:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset variables")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy text")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Pick.Keys()) == 0 && len(km.Cancel.Keys()) == 0 && len(km.Drop.Keys()) == 0
}

// helpKeys adapts KeyMap to help.KeyMap for the current mode.
type helpKeys struct {
	km      KeyMap
	placing bool
}

func (h helpKeys) ShortHelp() []key.Binding {
	if h.placing {
		return []key.Binding{h.km.SlotLeft, h.km.SlotRight, h.km.Drop, h.km.Cancel}
	}
	return []key.Binding{h.km.Pick, h.km.Reset, h.km.Copy}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.km.Pick, h.km.Reset, h.km.Copy},
		{h.km.SlotLeft, h.km.SlotRight, h.km.SlotFirst, h.km.SlotLast, h.km.Drop, h.km.Cancel},
	}
}
