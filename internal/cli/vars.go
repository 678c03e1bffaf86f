package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/varpad/token"
)

func newVarsCommand(st *state) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List catalog variables and whether the text uses them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			used := token.Identifiers(st.text)
			list := st.cfg.Variables.Filter(filter)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, v := range list {
				mark := " "
				if used.Has(v.Identifier) {
					mark = usedColor.Sprint("✓")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, nameColor.Sprint(v.Name), tokenColor.Sprint(v.Token()))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "fuzzy filter on name or identifier")
	return cmd
}
