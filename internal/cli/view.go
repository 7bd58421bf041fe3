package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sr-kai/mango-lollipop/internal/observability"
)

var viewPick bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the visual dashboard in your browser",
	Long: `Open dashboard.html from the current project in your browser.

With --pick, choose interactively between the generated documents
(dashboard, overview, message viewer) when more than one exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Projects == nil {
			return fmt.Errorf("project store not initialized")
		}
		if Browser == nil {
			return fmt.Errorf("browser opener not initialized")
		}

		target := ""
		if viewPick {
			picked, err := pickArtifact()
			if err != nil {
				return err
			}
			if picked == "" {
				return nil // cancelled
			}
			target = picked
		} else {
			path, ok := Projects.FindFile("dashboard.html")
			if !ok {
				fmt.Println("No dashboard found. Run `mango generate` first.")
				return nil
			}
			target = path
		}

		fmt.Printf("Opening dashboard: %s\n", target)
		if err := Browser.Open(target); err != nil {
			return fmt.Errorf("opening browser: %w", err)
		}

		logEvent(observability.EventViewOpened, "document opened", map[string]any{
			"file": target,
		})
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewPick, "pick", false, "Pick which generated document to open")
	rootCmd.AddCommand(viewCmd)
}
