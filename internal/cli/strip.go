package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/varpad/session"
)

func newStripCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "strip",
		Short: "Print the text with every variable removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := session.New(session.Config{
				Text:     st.text,
				Catalog:  st.cfg.Variables,
				OnChange: logEvent(zerolog.Ctx(cmd.Context())),
			})
			sess.ResetVariables()
			printText(cmd.OutOrStdout(), sess.Text())
			return nil
		},
	}
}
