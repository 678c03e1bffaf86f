package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/varpad/catalog"
	"github.com/iw2rmb/varpad/internal/grapheme"
	"github.com/iw2rmb/varpad/token"
)

const (
	gripGlyph = "⠿"

	resetLabel         = "Reset variables"
	resetTitleEnabled  = "Remove all variables from the text"
	resetTitleDisabled = "No variables to remove"

	paletteHeading = "Variables"
	allPlacedHint  = "All variables are in the text"
)

// frame is the composed view plus the geometry needed to hit-test it.
// Coordinates are relative to the component's top-left cell.
type frame struct {
	lines []string

	// Origin of the text box content.
	boxX, boxY int
	slots      []slotLine

	resetY      int
	resetWidth  int
	resetActive bool

	cards []cardHit
}

type cardHit struct {
	y, width int
	v        catalog.Variable
}

func (m Model) View() string {
	f := m.compose()
	view := strings.Join(f.lines, "\n")
	if m.drag.active && !m.drag.keyboard {
		view = m.drawGhost(view, len(f.lines))
	}
	return view
}

func (m Model) compose() frame {
	var f frame
	st := m.cfg.Style

	if m.cfg.Heading != "" {
		f.lines = append(f.lines, st.Heading.Render(m.cfg.Heading))
	}

	var body string
	if m.sess.Placing() {
		f.slots = layoutSlots(m.sess.Words(), m.contentWidth())
		body = m.renderSlots(f.slots)
	} else {
		body = m.textarea.View()
	}
	f.boxX = st.Frame.GetMarginLeft() + st.Frame.GetBorderLeftSize() + st.Frame.GetPaddingLeft()
	f.boxY = len(f.lines) + st.Frame.GetMarginTop() + st.Frame.GetBorderTopSize() + st.Frame.GetPaddingTop()
	f.lines = append(f.lines, strings.Split(st.Frame.Render(body), "\n")...)

	btnStyle, title := st.Button, resetTitleEnabled
	f.resetActive = m.sess.CanReset()
	if !f.resetActive {
		btnStyle, title = st.ButtonDisabled, resetTitleDisabled
	}
	btn := btnStyle.Render(resetLabel)
	f.resetY = len(f.lines)
	f.resetWidth = lipgloss.Width(btn)
	f.lines = append(f.lines, btn+" "+st.Hint.Render(title), "")

	f.lines = append(f.lines, st.PaletteHeading.Render(paletteHeading))
	avail := m.sess.Available()
	if len(avail) == 0 {
		f.lines = append(f.lines, st.Hint.Render(allPlacedHint))
	}
	for i, v := range avail {
		style := st.Card
		if m.drag.active && v.Identifier == m.drag.source {
			style = st.CardDragging
		}
		card := style.Render(m.cardLabel(v))
		line := card
		if i < 9 {
			line += st.Hint.Render(fmt.Sprintf(" alt+%d", i+1))
		}
		f.cards = append(f.cards, cardHit{y: len(f.lines), width: lipgloss.Width(card), v: v})
		f.lines = append(f.lines, line)
	}

	f.lines = append(f.lines, "", m.help.View(helpKeys{km: m.cfg.KeyMap, placing: m.sess.Placing()}))
	return f
}

func (m Model) cardLabel(v catalog.Variable) string {
	label := gripGlyph + " " + v.Name
	return grapheme.Truncate(label, m.contentWidth(), "…")
}

func (m Model) renderSlots(lines []slotLine) string {
	st := m.cfg.Style
	width := m.contentWidth()
	rows := m.cfg.textHeight()
	if len(lines) > rows {
		rows = len(lines)
	}

	out := make([]string, rows)
	for i := range out {
		var sb strings.Builder
		used := 0
		if i < len(lines) {
			for _, seg := range lines[i] {
				switch {
				case seg.slot < 0:
					sb.WriteString(m.renderWord(seg.text))
				case m.hoverOK && seg.slot == m.hover:
					sb.WriteString(st.SlotActive.Render(slotMarkActive))
				default:
					sb.WriteString(st.Slot.Render(seg.text))
				}
				used = seg.x + seg.width
			}
		}
		if used < width {
			sb.WriteString(strings.Repeat(" ", width-used))
		}
		out[i] = sb.String()
	}
	return strings.Join(out, "\n")
}

// renderWord highlights complete tokens inside a word.
func (m Model) renderWord(word string) string {
	st := m.cfg.Style
	spans := token.Find(word)
	if len(spans) == 0 {
		return st.Word.Render(word)
	}
	var sb strings.Builder
	prev := 0
	for _, sp := range spans {
		if sp.Start > prev {
			sb.WriteString(st.Word.Render(word[prev:sp.Start]))
		}
		sb.WriteString(st.Token.Render(word[sp.Start:sp.End]))
		prev = sp.End
	}
	if prev < len(word) {
		sb.WriteString(st.Word.Render(word[prev:]))
	}
	return sb.String()
}

// drawGhost floats the dragged card next to the pointer.
func (m Model) drawGhost(base string, rows int) string {
	ghost := m.cfg.Style.Ghost.Render(gripGlyph + " " + m.drag.label)
	x := clampInt(m.drag.x+1, 0, maxInt(m.width-lipgloss.Width(ghost), 0))
	y := clampInt(m.drag.y, 0, maxInt(rows-1, 0))
	return overlay.Composite(ghost, base, overlay.Left, overlay.Top, x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
