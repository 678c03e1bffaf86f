package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/varpad/catalog"
	"github.com/iw2rmb/varpad/session"
	"github.com/iw2rmb/varpad/slots"
	"github.com/iw2rmb/varpad/token"
)

var ErrMissingFlag = errors.Base("required flag not set")

func newInsertCommand(st *state) *cobra.Command {
	var (
		id   string
		slot int
	)
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Print the text with a variable placed at a word slot",
		Long: `Print the text with a variable placed at a word slot.

Slot 0 is before the first word, slot N after the N-th word. Slots past the
end are clamped. When --var or --slot is missing and stdin is a terminal,
they are asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := session.New(session.Config{
				Text:     st.text,
				Catalog:  st.cfg.Variables,
				OnChange: logEvent(zerolog.Ctx(cmd.Context())),
			})

			if !cmd.Flags().Changed("var") {
				v, err := st.askVariable(sess.Available())
				if err != nil {
					return err
				}
				id = v
			}
			if !cmd.Flags().Changed("slot") {
				s, err := st.askSlot(sess.Text())
				if err != nil {
					return err
				}
				slot = s
			}

			if !token.IsIdentifier(id) {
				return errors.Errorf("%q: %w", id, catalog.ErrInvalidIdentifier)
			}
			if _, ok := sess.Catalog().Lookup(id); !ok {
				warn(cmd.ErrOrStderr(), "%s is not in the catalog", id)
			}
			if !sess.Drop(slot, true, id) {
				warn(cmd.ErrOrStderr(), "%s is already in the text", id)
			}
			printText(cmd.OutOrStdout(), sess.Text())
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "var", "", "variable identifier, e.g. USER_NAME")
	cmd.Flags().IntVar(&slot, "slot", 0, "word slot to insert at")
	return cmd
}

func (st *state) askVariable(avail catalog.Catalog) (string, error) {
	if !st.opts.IsTerminal() {
		return "", errors.Errorf("--var: %w", ErrMissingFlag)
	}
	if len(avail) == 0 {
		return "", errors.New("every variable is already in the text")
	}
	options := make([]string, len(avail))
	for i, v := range avail {
		options[i] = fmt.Sprintf("%s (%s)", v.Name, v.Identifier)
	}
	var idx int
	prompt := &survey.Select{
		Message: "Variable:",
		Options: options,
	}
	if err := st.opts.Ask(prompt, &idx); err != nil {
		return "", errors.Errorf("variable prompt: %w", err)
	}
	if idx < 0 || idx >= len(avail) {
		return "", errors.Errorf("variable prompt: selection %d out of range", idx)
	}
	return avail[idx].Identifier, nil
}

func (st *state) askSlot(text string) (int, error) {
	if !st.opts.IsTerminal() {
		return 0, errors.Errorf("--slot: %w", ErrMissingFlag)
	}
	last := slots.Count(text) - 1
	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Slot (0-%d):", last),
		Default: strconv.Itoa(last),
	}
	validate := survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		if _, err := strconv.Atoi(s); err != nil {
			return errors.Errorf("%q is not a number", s)
		}
		return nil
	})
	if err := st.opts.Ask(prompt, &answer, validate); err != nil {
		return 0, errors.Errorf("slot prompt: %w", err)
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.Errorf("slot prompt: %w", err)
	}
	return n, nil
}
