package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full lifecycle messaging system",
	Long: `Print the skill workflow that generates the lifecycle messaging
system for the current project: matrix, message copy, and visuals.

The skills run in an AI coding assistant; this command checks the project
state and tells you which ones to run next.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Projects == nil {
			return fmt.Errorf("project store not initialized")
		}

		config, err := Projects.LoadConfig()
		if err != nil {
			fmt.Println("No mango-lollipop.json found. Run `mango init <name>` first.")
			return nil
		}

		if config.Analysis == nil {
			fmt.Println("No analysis found. Run the start skill first:")
			fmt.Println(`  claude "Read the start skill and help me set up lifecycle messaging"`)
			return nil
		}

		fmt.Printf("Generating lifecycle messaging for %q...\n", config.Name)
		fmt.Println()
		fmt.Println("Run these skills in Claude Code in order:")
		fmt.Println()
		fmt.Println("  1. Generate matrix:")
		fmt.Println(`     claude "Read the generate-matrix skill and build the lifecycle matrix"`)
		fmt.Println()
		fmt.Println("  2. Generate message copy:")
		fmt.Println(`     claude "Read the generate-messages skill and write all message copy"`)
		fmt.Println()
		fmt.Println("  3. Generate visuals:")
		fmt.Println(`     claude "Read the generate-dashboard skill and create the dashboard and journey map"`)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
