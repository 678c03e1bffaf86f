package editor

import tea "github.com/charmbracelet/bubbletea"

// updateMouse drives drag gestures. Coordinates are relative to the
// component's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.sess.Placing() {
			return m, nil
		}
		f := m.compose()
		if f.resetAtPoint(msg.X, msg.Y) {
			if m.sess.ResetVariables() {
				m.syncTextarea()
			}
			return m, nil
		}
		v, ok := f.cardAtPoint(msg.X, msg.Y)
		if !ok || !m.sess.GestureStart(v.Identifier) {
			return m, nil
		}
		m.drag = dragState{active: true, source: v.Identifier, label: v.Name, x: msg.X, y: msg.Y}
		m.hover, m.hoverOK = m.compose().slotAtPoint(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.drag.active || m.drag.keyboard {
			return m, nil
		}
		m.drag.x, m.drag.y = msg.X, msg.Y
		m.hover, m.hoverOK = m.compose().slotAtPoint(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !m.drag.active || m.drag.keyboard {
			return m, nil
		}
		slot, ok := m.compose().slotAtPoint(msg.X, msg.Y)
		return m.endGesture(slot, ok), nil
	}

	return m, nil
}
