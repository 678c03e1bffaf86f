package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/varpad/slots"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// The host may have mutated the session directly.
	if !m.sess.Placing() {
		m.syncTextarea()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		if m.sess.Placing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	if m.sess.Placing() {
		return m.updatePlacingKey(msg), nil
	}

	switch {
	case key.Matches(msg, km.Pick):
		return m.pickByKey(msg.String()), nil
	case key.Matches(msg, km.Reset):
		if m.sess.ResetVariables() {
			m.syncTextarea()
		}
		return m, nil
	case key.Matches(msg, km.Copy):
		if m.cfg.Clipboard != nil {
			_ = m.cfg.Clipboard.WriteText(m.sess.Text())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.pullText()
	return m, cmd
}

// pickByKey starts keyboard placement for the available variable named by
// the trailing digit of k ("alt+2" is the second one). The drop target
// starts at the last slot.
func (m Model) pickByKey(k string) Model {
	if k == "" {
		return m
	}
	n := int(k[len(k)-1] - '1')
	avail := m.sess.Available()
	if n < 0 || n >= len(avail) {
		return m
	}
	v := avail[n]
	if !m.sess.GestureStart(v.Identifier) {
		return m
	}
	m.drag = dragState{active: true, keyboard: true, source: v.Identifier, label: v.Name}
	m.hover = slots.Count(m.sess.Text()) - 1
	m.hoverOK = m.hover >= 0
	if !m.hoverOK {
		m.hover = 0
	}
	return m
}

func (m Model) updatePlacingKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	last := slots.Count(m.sess.Text()) - 1

	switch {
	case key.Matches(msg, km.Cancel):
		return m.cancelGesture()
	case key.Matches(msg, km.Drop):
		return m.endGesture(m.hover, m.hoverOK)
	}

	// Slot navigation only applies to keyboard placement; a mouse gesture
	// follows the pointer.
	if !m.drag.keyboard || last < 0 {
		return m
	}
	switch {
	case key.Matches(msg, km.SlotLeft):
		m.hover = clampInt(m.hover-1, 0, last)
	case key.Matches(msg, km.SlotRight):
		m.hover = clampInt(m.hover+1, 0, last)
	case key.Matches(msg, km.SlotFirst):
		m.hover = 0
	case key.Matches(msg, km.SlotLast):
		m.hover = last
	default:
		return m
	}
	m.hoverOK = true
	return m
}

func (m Model) endGesture(slot int, ok bool) Model {
	if !m.drag.active {
		return m
	}
	m.sess.GestureEnd(m.drag.source, slot, ok)
	m.drag = dragState{}
	m.hover, m.hoverOK = 0, false
	m.syncTextarea()
	return m
}
