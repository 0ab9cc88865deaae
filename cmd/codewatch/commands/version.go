package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "codewatch version %s\n", version)
		if commit != "none" {
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		}
		if date != "unknown" {
			fmt.Fprintf(cmd.OutOrStdout(), "  built at: %s\n", date)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
