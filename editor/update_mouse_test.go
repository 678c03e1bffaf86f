package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func cardY(t *testing.T, m Model, id string) int {
	t.Helper()
	for _, c := range m.compose().cards {
		if c.v.Identifier == id {
			return c.y
		}
	}
	t.Fatalf("no card for %q", id)
	return 0
}

func TestMouse_DragDropAtStart(t *testing.T) {
	m := newTestModel("Welcome aboard")

	m, _ = m.Update(press(0, cardY(t, m, "USER_NAME")))
	if !m.Dragging() || !m.Session().Placing() {
		t.Fatalf("press on card must start a gesture")
	}

	f := m.compose()
	m, _ = m.Update(motion(f.boxX+1, f.boxY))
	if slot, ok := m.HoverSlot(); !ok || slot != 0 {
		t.Fatalf("hover=(%d,%v), want (0,true)", slot, ok)
	}

	m, _ = m.Update(release(f.boxX+1, f.boxY))
	if m.Dragging() || m.Session().Placing() {
		t.Fatalf("release must end the gesture")
	}
	if got, want := m.Text(), "{{USER_NAME}} Welcome aboard"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestMouse_DropBetweenWords(t *testing.T) {
	m := newTestModel("Welcome aboard")
	m, _ = m.Update(press(0, cardY(t, m, "COMPANY_NAME")))

	f := m.compose()
	// " · Welcome · aboard · ": slot 1 starts at x=10.
	m, _ = m.Update(release(f.boxX+11, f.boxY))
	if got, want := m.Text(), "Welcome {{COMPANY_NAME}} aboard"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestMouse_ReleaseOutsideSlotsChangesNothing(t *testing.T) {
	m := newTestModel("Welcome aboard")
	y := cardY(t, m, "USER_NAME")
	m, _ = m.Update(press(0, y))
	m, _ = m.Update(release(0, y+100))

	if m.Session().Placing() {
		t.Fatalf("release must always leave placing mode")
	}
	if got := m.Text(); got != "Welcome aboard" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestMouse_PressOutsideCardsIgnored(t *testing.T) {
	m := newTestModel("Welcome aboard")
	y := cardY(t, m, "USER_NAME")
	m, _ = m.Update(press(59, y))
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Dragging() {
		t.Fatalf("only a left press on a card starts a gesture")
	}
}

func TestMouse_ResetButton(t *testing.T) {
	m := newTestModel("Hi {{USER_NAME}}, welcome")
	f := m.compose()
	if !f.resetActive {
		t.Fatalf("reset must be enabled while tokens are present")
	}

	m, _ = m.Update(press(0, f.resetY))
	if got := m.Text(); got != "Hi, welcome" {
		t.Fatalf("text=%q, want %q", got, "Hi, welcome")
	}
	if m.compose().resetActive {
		t.Fatalf("reset must be disabled without tokens")
	}
}

func TestMouse_IgnoredDuringKeyboardPlacement(t *testing.T) {
	m := newTestModel("Welcome aboard")
	m, _ = m.Update(altKey('1'))

	f := m.compose()
	m, _ = m.Update(release(f.boxX+1, f.boxY))
	if !m.Session().Placing() {
		t.Fatalf("mouse release must not end a keyboard gesture")
	}
}
