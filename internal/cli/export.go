package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/internal/observability"
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

var exportProject string

var exportCmd = &cobra.Command{
	Use:   "export <type>",
	Short: "Generate outputs from project data (excel, html, messages)",
	Long: `Generate deliverables from the project's matrix.json and analysis.json.

Types:
  excel     write matrix.xlsx (5 sheets)
  html      write dashboard.html, overview.html, messages.html, journey.mmd
  messages  print instructions for regenerating message copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Projects == nil {
			return fmt.Errorf("project store not initialized")
		}

		exportType := args[0]

		if exportType == "messages" {
			fmt.Println("Run in Claude Code:")
			fmt.Println(`  claude "Read the generate-messages skill and regenerate all message files"`)
			return nil
		}

		projectDir := exportProject
		if projectDir == "" {
			dir, ok := Projects.FindDir("matrix.json")
			if !ok {
				fmt.Println("No matrix.json found. Run the generate-matrix skill first.")
				return nil
			}
			projectDir = dir
		}

		switch exportType {
		case "excel":
			return exportExcel(projectDir)
		case "html", "visuals":
			return exportHTML(projectDir)
		default:
			fmt.Printf("Unknown export type: %q\n", exportType)
			fmt.Println("Valid types: excel, html, messages")
			return nil
		}
	},
}

// loadProjectData reads matrix.json and analysis.json from the project
// directory, printing the skill hint and returning ok=false when either
// is missing.
func loadProjectData(projectDir string) (*models.Matrix, *models.Analysis, bool, error) {
	if _, err := os.Stat(filepath.Join(projectDir, "matrix.json")); err != nil {
		fmt.Printf("No matrix.json in %s. Run the generate-matrix skill first.\n", projectDir)
		return nil, nil, false, nil
	}
	if _, err := os.Stat(filepath.Join(projectDir, "analysis.json")); err != nil {
		fmt.Printf("No analysis.json in %s. Run the start skill first.\n", projectDir)
		return nil, nil, false, nil
	}

	matrix, err := Projects.LoadMatrix(projectDir)
	if err != nil {
		return nil, nil, false, fmt.Errorf("loading matrix: %w", err)
	}
	analysis, err := Projects.LoadAnalysis(projectDir)
	if err != nil {
		return nil, nil, false, fmt.Errorf("loading analysis: %w", err)
	}
	return matrix, analysis, true, nil
}

func exportExcel(projectDir string) error {
	matrix, analysis, ok, err := loadProjectData(projectDir)
	if err != nil || !ok {
		return err
	}

	wb, err := core.GenerateMatrixWorkbook(matrix.Messages, analysis.Events, analysis.FlattenTags())
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	outPath := filepath.Join(projectDir, "matrix.xlsx")
	if err := core.WriteWorkbook(wb, outPath); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	fmt.Printf("Excel written: %s\n", outPath)
	fmt.Printf("%d messages across 5 sheets\n", len(matrix.Messages))

	logEvent(observability.EventExportCompleted, "excel export", map[string]any{
		"format":   "excel",
		"path":     outPath,
		"messages": len(matrix.Messages),
	})
	return nil
}

func exportHTML(projectDir string) error {
	matrix, analysis, ok, err := loadProjectData(projectDir)
	if err != nil || !ok {
		return err
	}

	dashboardHTML, err := core.GenerateDashboard(*matrix, *analysis)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}
	dashboardPath := filepath.Join(projectDir, "dashboard.html")
	if err := os.WriteFile(dashboardPath, []byte(dashboardHTML), 0o600); err != nil {
		return fmt.Errorf("writing dashboard: %w", err)
	}
	fmt.Printf("Dashboard written:   %s\n", dashboardPath)

	overviewHTML, err := core.GenerateOverview(*matrix, *analysis)
	if err != nil {
		return fmt.Errorf("building overview: %w", err)
	}
	overviewPath := filepath.Join(projectDir, "overview.html")
	if err := os.WriteFile(overviewPath, []byte(overviewHTML), 0o600); err != nil {
		return fmt.Errorf("writing overview: %w", err)
	}
	fmt.Printf("Overview written:    %s\n", overviewPath)

	// Message copy is optional; the viewer shows placeholders for
	// messages without generated content.
	var content map[string]string
	if Contents != nil {
		content, err = Contents.LoadMessageContent(projectDir)
		if err != nil {
			return fmt.Errorf("loading message content: %w", err)
		}
	}

	viewerHTML, err := core.GenerateMessageViewer(*matrix, *analysis, content)
	if err != nil {
		return fmt.Errorf("building message viewer: %w", err)
	}
	viewerPath := filepath.Join(projectDir, "messages.html")
	if err := os.WriteFile(viewerPath, []byte(viewerHTML), 0o600); err != nil {
		return fmt.Errorf("writing message viewer: %w", err)
	}
	fmt.Printf("Message viewer:      %s\n", viewerPath)

	journeyPath := filepath.Join(projectDir, "journey.mmd")
	if err := os.WriteFile(journeyPath, []byte(core.GenerateJourneyMap(matrix.Messages)), 0o600); err != nil {
		return fmt.Errorf("writing journey map: %w", err)
	}
	fmt.Printf("Journey map:         %s\n", journeyPath)

	fmt.Printf("\n4 outputs generated from %d messages.\n", len(matrix.Messages))

	logEvent(observability.EventExportCompleted, "html export", map[string]any{
		"format":   "html",
		"path":     projectDir,
		"messages": len(matrix.Messages),
	})
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "Project directory (auto-detected if omitted)")
	rootCmd.AddCommand(exportCmd)
}
