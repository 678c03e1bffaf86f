package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/varpad/editor"
	"github.com/iw2rmb/varpad/session"
)

// program hosts the editor full screen.
type program struct {
	editor editor.Model
}

func (p program) Init() tea.Cmd { return p.editor.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.editor = p.editor.SetSize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.editor, cmd = p.editor.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.editor.View() }

func runProgram(ctx context.Context, cfg editor.Config) (string, error) {
	tp := tea.NewProgram(
		program{editor: editor.New(cfg)},
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := tp.Run()
	if err != nil {
		return "", err
	}
	return final.(program).editor.Text(), nil
}

// logEvent records session changes. Text bodies stay out of the log.
func logEvent(log *zerolog.Logger) func(session.Event) {
	return func(ev session.Event) {
		e := log.Debug()
		if ev.Change.Kind != session.ChangeMode {
			e = log.Info()
		}
		e.Str("change", ev.Change.Kind.String()).
			Uint64("version", ev.Version).
			Str("mode", ev.Mode.String()).
			Int("available", ev.Available)
		if ev.Change.Identifier != "" {
			e.Str("variable", ev.Change.Identifier)
		}
		if ev.Change.Slot >= 0 {
			e.Int("slot", ev.Change.Slot)
		}
		e.Msg("session changed")
	}
}
