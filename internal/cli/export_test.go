package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sr-kai/mango-lollipop/internal/storage"
)

const exportMatrixJSON = `{
  "messages": [
    {
      "id": "TX-1",
      "stage": "TX",
      "name": "Email verification",
      "classification": "transactional",
      "trigger": {"event": "user.signed_up", "type": "event"},
      "wait": "PT0S",
      "subject": "Verify your email",
      "body": "Confirm your address to get started.",
      "cta": {"text": "Verify"},
      "channels": ["email"],
      "format": "rich",
      "from": "Acme",
      "segment": "all",
      "tags": ["source:signup"],
      "goal": "verified"
    },
    {
      "id": "AQ-1",
      "stage": "AQ",
      "name": "Welcome",
      "classification": "lifecycle",
      "trigger": {"event": "user.verified", "type": "event"},
      "wait": "PT1H",
      "subject": "Welcome to Acme",
      "body": "Here is how to get value fast.",
      "cta": {"text": "Get started"},
      "channels": ["email", "in-app"],
      "format": "rich",
      "from": "Acme",
      "segment": "all",
      "tags": ["source:signup"],
      "goal": "activated"
    }
  ]
}`

const exportAnalysisJSON = `{
  "path": "fresh",
  "company": {
    "name": "Acme",
    "product_type": "saas",
    "target_audience": "teams",
    "key_value_prop": "ship faster",
    "aha_moment": "first deploy",
    "key_features": ["deploys"],
    "pricing_model": "freemium"
  },
  "channels": ["email", "in-app"],
  "voice": {"tone": "friendly", "formality": 2, "emoji_usage": "light", "signature_style": "first-name"},
  "events": {
    "identity": ["user.signed_up"],
    "activation": ["user.verified"],
    "engagement": [],
    "conversion": [],
    "retention": []
  },
  "tags": {"sources": ["source:signup"], "plans": ["free"], "segments": [], "features": []},
  "recommendations": ["Start with activation"]
}`

// setupExportProject writes a minimal project into a temp dir and points
// the package stores at it. Returns the project dir.
func setupExportProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "matrix.json"), []byte(exportMatrixJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "analysis.json"), []byte(exportAnalysisJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	origProjects, origContents := Projects, Contents
	t.Cleanup(func() { Projects, Contents = origProjects, origContents })
	Projects = storage.NewProjectStore(dir, "")
	Contents = storage.NewContentStore()

	return dir
}

func TestExportExcel_WritesWorkbook(t *testing.T) {
	dir := setupExportProject(t)

	if err := exportExcel(dir); err != nil {
		t.Fatalf("exportExcel: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "matrix.xlsx"))
	if err != nil {
		t.Fatalf("expected matrix.xlsx: %v", err)
	}
	if info.Size() == 0 {
		t.Error("matrix.xlsx is empty")
	}
}

func TestExportHTML_WritesAllOutputs(t *testing.T) {
	dir := setupExportProject(t)

	if err := exportHTML(dir); err != nil {
		t.Fatalf("exportHTML: %v", err)
	}

	outputs := []string{"dashboard.html", "overview.html", "messages.html", "journey.mmd"}
	for _, name := range outputs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	dashboard, err := os.ReadFile(filepath.Join(dir, "dashboard.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dashboard), `id="msg-data"`) {
		t.Error("dashboard missing embedded message data")
	}

	journey, err := os.ReadFile(filepath.Join(dir, "journey.mmd"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(journey), "graph TD") {
		t.Errorf("journey map missing graph header:\n%s", journey)
	}
}

func TestExportHTML_ViewerIncludesMessageContent(t *testing.T) {
	dir := setupExportProject(t)

	msgDir := filepath.Join(dir, "messages", "AQ")
	if err := os.MkdirAll(msgDir, 0o750); err != nil {
		t.Fatal(err)
	}
	content := "## Email\n\n**Subject:** Welcome aboard\n\nHello {{first_name}}!\n"
	if err := os.WriteFile(filepath.Join(msgDir, "AQ-1-welcome.md"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := exportHTML(dir); err != nil {
		t.Fatalf("exportHTML: %v", err)
	}

	viewer, err := os.ReadFile(filepath.Join(dir, "messages.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(viewer), "Welcome aboard") {
		t.Error("viewer missing parsed message content")
	}
}

func TestExport_MissingMatrix(t *testing.T) {
	dir := t.TempDir()

	origProjects := Projects
	t.Cleanup(func() { Projects = origProjects })
	Projects = storage.NewProjectStore(dir, "")

	// Analysis present, matrix absent.
	if err := os.WriteFile(filepath.Join(dir, "analysis.json"), []byte(exportAnalysisJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, ok, err := loadProjectData(dir)
	if err != nil {
		t.Fatalf("loadProjectData: %v", err)
	}
	if ok {
		t.Error("expected ok=false without matrix.json")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "matrix.xlsx")); statErr == nil {
		t.Error("no workbook should be written")
	}
}

func TestExportCommand_UnknownType(t *testing.T) {
	dir := setupExportProject(t)

	origProject := exportProject
	t.Cleanup(func() { exportProject = origProject })
	exportProject = dir

	if err := exportCmd.RunE(exportCmd, []string{"pdf"}); err != nil {
		t.Fatalf("unexpected error for unknown type: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "matrix.xlsx")); err == nil {
		t.Error("unknown type should not produce outputs")
	}
}
