package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "mango",
	Short: "Mango Lollipop - AI-powered lifecycle messaging generator",
	Long: `Mango Lollipop scaffolds and maintains a lifecycle messaging project:
a validated message matrix, an Excel export, a Mermaid journey map, and
self-contained HTML documents (dashboard, overview, message viewer).

Message copy itself is written with an AI assistant through the project's
workflow skills; this CLI manages the project files around that workflow.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mango-lollipop %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
