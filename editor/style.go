package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// The zero Style renders plain text without borders, which keeps layout
// arithmetic simple in tests.
type Style struct {
	Heading lipgloss.Style

	// Frame wraps the text box in both modes.
	Frame lipgloss.Style

	// Placing view.
	Word       lipgloss.Style
	Token      lipgloss.Style
	Slot       lipgloss.Style
	SlotActive lipgloss.Style

	// Palette.
	PaletteHeading lipgloss.Style
	Card           lipgloss.Style
	CardDragging   lipgloss.Style
	Ghost          lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Hint           lipgloss.Style
}

// DefaultStyle returns the default styles bound to the default renderer.
func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle returns the default styles bound to r.
func NewStyle(r *lipgloss.Renderer) Style {
	muted := lipgloss.Color("240")
	accent := lipgloss.Color("34")
	return Style{
		Heading: r.NewStyle().Bold(true),

		Frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1),

		Word:       r.NewStyle(),
		Token:      r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Slot:       r.NewStyle(),
		SlotActive: r.NewStyle().Foreground(accent).Bold(true),

		PaletteHeading: r.NewStyle().Underline(true),
		Card:           r.NewStyle().Padding(0, 1).Background(lipgloss.Color("236")),
		CardDragging:   r.NewStyle().Padding(0, 1).Foreground(muted).Faint(true),
		Ghost:          r.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Bold(true),

		Button:         r.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true),
		ButtonDisabled: r.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true).Foreground(muted).Faint(true),
		Hint:           r.NewStyle().Foreground(muted),
	}
}
