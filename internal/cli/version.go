package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/varpad"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the varpad version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "varpad "+varpad.VersionTag())
		},
	}
}
