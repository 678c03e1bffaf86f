package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/varpad/session"
)

// defaultWidth is used until the host calls SetSize.
const defaultWidth = 60

// Model is a Bubble Tea component that edits text and places variable
// tokens into it.
type Model struct {
	cfg  Config
	sess *session.Session

	textarea textarea.Model
	help     help.Model

	width   int
	focused bool

	drag dragState

	// Slot under the pointer or keyboard selection while placing.
	hover   int
	hoverOK bool

	// Session text last pushed into the textarea and the value the
	// textarea held right after. The textarea sanitizes input (tabs, CRs),
	// so the two can differ without any user edit.
	syncedText  string
	syncedValue string
}

// dragState tracks the gesture that drives placing mode.
type dragState struct {
	active   bool
	keyboard bool
	source   string
	label    string

	// Last pointer position, component-relative.
	x, y int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	sess := session.New(session.Config{
		Text:     cfg.Text,
		Catalog:  cfg.Catalog,
		OnChange: cfg.OnChange,
	})
	m := Model{
		cfg:      cfg,
		sess:     sess,
		textarea: newTextarea(),
		help:     help.New(),
		width:    defaultWidth,
		focused:  true,
	}
	m.pushText()
	m.resizeTextarea()
	m.textarea.Focus()
	return m
}

func newTextarea() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return ta
}

// Session exposes the underlying state machine. Mutating it directly is
// allowed; the textarea resyncs on the next Update.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Text() string { return m.sess.Text() }

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.help.Width = width
	m.resizeTextarea()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.textarea.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.textarea.Blur()
		m = m.cancelGesture()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Dragging reports whether a placement gesture is in progress.
func (m Model) Dragging() bool { return m.drag.active }

// HoverSlot returns the slot a drop would target right now.
func (m Model) HoverSlot() (int, bool) {
	if !m.drag.active {
		return 0, false
	}
	return m.hover, m.hoverOK
}

func (m *Model) resizeTextarea() {
	m.textarea.SetWidth(m.contentWidth())
	m.textarea.SetHeight(m.cfg.textHeight())
}

func (m Model) contentWidth() int {
	w := m.width - m.cfg.Style.Frame.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// syncTextarea pushes session text into the textarea after a change that
// did not come from typing.
func (m *Model) syncTextarea() {
	if m.sess.Text() != m.syncedText {
		m.pushText()
	}
}

func (m *Model) pushText() {
	m.textarea.SetValue(m.sess.Text())
	m.syncedText = m.sess.Text()
	m.syncedValue = m.textarea.Value()
}

// pullText forwards a textarea change to the session. Values equal to the
// last pushed one are not edits.
func (m *Model) pullText() {
	v := m.textarea.Value()
	if v == m.syncedValue {
		return
	}
	m.sess.Edit(v)
	m.syncedText = m.sess.Text()
	m.syncedValue = v
}

func (m Model) cancelGesture() Model {
	if m.drag.active {
		m.sess.GestureCancel()
	}
	m.drag = dragState{}
	m.hover, m.hoverOK = 0, false
	return m
}
