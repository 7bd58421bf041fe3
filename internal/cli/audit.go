package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit existing lifecycle messaging",
	Long: `Print instructions for auditing an existing lifecycle messaging
setup with the audit skill. The audit compares your current messages
against the full lifecycle and reports coverage gaps.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Starting lifecycle messaging audit...")
		fmt.Println()
		fmt.Println("Run the audit skill in Claude Code:")
		fmt.Println(`  claude "Read the audit skill and help me audit my existing lifecycle messaging"`)
		fmt.Println()
		fmt.Println("Have your existing messages ready to paste or upload.")
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
