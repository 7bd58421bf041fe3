package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer mango-lollipop release",
	Long: `Compare the running version against the latest published release
and print upgrade instructions when a newer one exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Releases == nil {
			return fmt.Errorf("release checker not initialized")
		}

		newer, latest, err := Releases.UpdateAvailable(appVersion)
		if err != nil {
			fmt.Println("Could not reach the release registry. Check your internet connection.")
			return nil
		}

		if latest == nil {
			// Dev builds have no comparable version.
			fmt.Printf("Running a development build (%s); skipping version check.\n", appVersion)
			return nil
		}

		if !newer {
			fmt.Printf("Already on the latest version (%s).\n", appVersion)
			return nil
		}

		fmt.Printf("Current version: %s\n", appVersion)
		fmt.Printf("Latest version:  %s\n", latest)
		fmt.Println()
		fmt.Println("Update with:")
		fmt.Println("  go install github.com/sr-kai/mango-lollipop/cmd/mango@latest")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
