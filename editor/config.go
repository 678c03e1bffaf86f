package editor

import (
	"github.com/iw2rmb/varpad/catalog"
	"github.com/iw2rmb/varpad/session"
)

const (
	DefaultHeading    = "Drag and drop into textarea"
	DefaultTextHeight = 5
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the session.
	Text string

	// Variables offered in the palette, in display order.
	Catalog catalog.Catalog

	// Heading drawn above the text box. Empty hides it.
	Heading string

	// Rows of the text box. Zero means DefaultTextHeight.
	TextHeight int

	Style  Style
	KeyMap KeyMap

	// Optional. ctrl+y copies the text when set.
	Clipboard Clipboard

	// Forwarded to session.Config.
	OnChange func(session.Event)
}

func (c Config) textHeight() int {
	if c.TextHeight <= 0 {
		return DefaultTextHeight
	}
	return c.TextHeight
}
