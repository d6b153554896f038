package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panjuncai/Sola-sub000/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "cloze", app.BuildVersion())
		},
	}
}
