package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/internal/observability"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a new Mango Lollipop project",
	Long: `Initialize a new Mango Lollipop project directory with one message
folder per lifecycle stage, the copy templates, the workflow skills, and
the initial mango-lollipop.json manifest.

Safe to run on existing projects -- files and directories that already
exist are skipped and not overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ProjectInit == nil {
			return fmt.Errorf("project initializer not initialized")
		}

		name := "my-project"
		if len(args) > 0 {
			name = args[0]
		}
		absPath, err := filepath.Abs(name)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		result, err := ProjectInit.Init(core.InitConfig{
			BasePath: absPath,
			Name:     filepath.Base(absPath),
		})
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}

		if len(result.Skipped) > 0 {
			fmt.Println("Skipped (already exist):")
			for _, p := range result.Skipped {
				rel, _ := filepath.Rel(absPath, p)
				fmt.Printf("  %s\n", rel)
			}
			fmt.Println()
		}

		logEvent(observability.EventProjectInitialized, "project initialized", map[string]any{
			"name": filepath.Base(absPath),
			"path": absPath,
		})

		fmt.Printf("Mango Lollipop project %q initialized at %s\n", filepath.Base(absPath), absPath)
		fmt.Println()
		fmt.Println("Next step:")
		fmt.Printf("  cd %s\n", name)
		fmt.Println("  /start")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
