package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miix-automations/website/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "website %s (%s)\n", version.Version, version.Commit)
		},
	}
}
