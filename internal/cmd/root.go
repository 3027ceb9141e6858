// Package cmd implements the website command line.
package cmd

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envDir string

	root := &cobra.Command{
		Use:          "website",
		Short:        "MIIX Automations landing site",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadDotEnv(envDir)
		},
	}

	root.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding .env and .env.local")

	root.AddCommand(
		newServeCmd(),
		newExportCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
