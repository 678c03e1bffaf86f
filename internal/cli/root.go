// Package cli wires the varpad command line: the interactive editor and a
// few scriptable commands over the same session model.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/varpad"
	"github.com/iw2rmb/varpad/editor"
	"github.com/iw2rmb/varpad/internal/config"
	"github.com/iw2rmb/varpad/internal/logger"
)

// AskFunc matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// RunFunc runs the interactive editor and returns the final text.
type RunFunc func(ctx context.Context, cfg editor.Config) (string, error)

// Options are the process-level seams of the CLI. Zero fields get the real
// implementations.
type Options struct {
	Fs         afero.Fs
	Ask        AskFunc
	IsTerminal func() bool
	Run        RunFunc
	Clipboard  editor.Clipboard
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Ask == nil {
		o.Ask = survey.AskOne
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	if o.Run == nil {
		o.Run = runProgram
	}
	if o.Clipboard == nil {
		o.Clipboard = systemClipboard{}
	}
	return o
}

// state is shared by the root command and its subcommands for one run.
type state struct {
	opts Options

	configPath string
	text       string
	logFile    string
	logLevel   string

	cfg     *config.Config
	logSink io.Closer
}

// NewRootCommand returns the varpad command tree.
func NewRootCommand(opts Options) *cobra.Command {
	st := &state{opts: opts.withDefaults()}

	cmd := &cobra.Command{
		Use:   "varpad",
		Short: "Place {{VARIABLE}} tokens into text",
		Long: `varpad edits a short text and places variable tokens into it.

Without a subcommand it opens the interactive editor: drag a variable card
onto a gap between words, or press alt+N to place the N-th variable with
the keyboard.`,
		Version:            varpad.VersionTag(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  st.setup,
		PersistentPostRunE: st.teardown,
		RunE:               st.runEditor,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "config file (TOML, YAML or JSON)")
	pf.StringVar(&st.text, "text", "", "initial text (default from config)")
	pf.StringVar(&st.logFile, "log-file", "", "append JSON logs to this file")
	pf.StringVar(&st.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().Bool("print", false, "print the final text on exit")

	cmd.AddCommand(
		newInsertCommand(st),
		newStripCommand(st),
		newVarsCommand(st),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the CLI with real process seams.
func Execute(ctx context.Context) error {
	if err := NewRootCommand(Options{}).ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}
	return nil
}

func (st *state) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	lvl, err := logger.ParseLevel(st.logLevel)
	if err != nil {
		return err
	}
	m := config.NewManager(st.opts.Fs)
	if err := m.Load(st.configPath); err != nil {
		return err
	}
	st.cfg = m.Config()
	if !cmd.Flags().Changed("text") {
		st.text = st.cfg.Text
	}

	// Opened last: cobra skips PersistentPostRunE when this hook fails.
	var w io.Writer
	if st.logFile != "" {
		f, err := st.opts.Fs.OpenFile(st.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Errorf("log file: %w", err)
		}
		st.logSink = f
		w = f
	}
	log := logger.New(w, lvl)

	log.Debug().
		Str("command", cmd.Name()).
		Str("config", m.ConfigFileUsed()).
		Int("variables", len(st.cfg.Variables)).
		Msg("configuration loaded")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.WithContext(ctx))
	return nil
}

func (st *state) teardown(*cobra.Command, []string) error {
	if st.logSink == nil {
		return nil
	}
	err := st.logSink.Close()
	st.logSink = nil
	return err
}

func (st *state) runEditor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	cfg := editor.Config{
		Text:       st.text,
		Catalog:    st.cfg.Variables,
		Heading:    st.cfg.Editor.Heading,
		TextHeight: st.cfg.Editor.TextHeight,
		Style:      editor.DefaultStyle(),
		KeyMap:     editor.DefaultKeyMap(),
		Clipboard:  st.opts.Clipboard,
		OnChange:   logEvent(log),
	}

	text, err := st.opts.Run(ctx, cfg)
	if err != nil {
		return errors.Errorf("editor: %w", err)
	}
	log.Info().Int("bytes", len(text)).Msg("editor closed")

	if doPrint, _ := cmd.Flags().GetBool("print"); doPrint {
		printText(cmd.OutOrStdout(), text)
	}
	return nil
}
