package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "generate %s (%s)\n", Version, GitCommit)
			return nil
		},
	}
}
