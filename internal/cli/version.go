package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the sunspots version and build commit.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sunspots v%s (%s)\n", version, commit)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Monthly sunspot dashboard built with Go")
		},
	}
}
