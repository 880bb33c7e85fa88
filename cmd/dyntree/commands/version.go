// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// The version needs no configuration.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dyntree %s (commit: %s)\n", Version, Commit)
		},
	}
}
