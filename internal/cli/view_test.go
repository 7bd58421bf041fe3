package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sr-kai/mango-lollipop/internal/integration"
	"github.com/sr-kai/mango-lollipop/internal/storage"
)

func TestViewCommand_OpensDashboard(t *testing.T) {
	dir := t.TempDir()
	dashboardPath := filepath.Join(dir, "dashboard.html")
	if err := os.WriteFile(dashboardPath, []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	origProjects, origBrowser := Projects, Browser
	t.Cleanup(func() { Projects, Browser = origProjects, origBrowser })

	var opened string
	Projects = storage.NewProjectStore(dir, "")
	Browser = integration.NewBrowserOpenerWithRunner("", "linux", func(name string, args ...string) error {
		opened = args[len(args)-1]
		return nil
	})

	if err := viewCmd.RunE(viewCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != dashboardPath {
		t.Errorf("opened %q, want %q", opened, dashboardPath)
	}
}

func TestViewCommand_NoDashboard(t *testing.T) {
	origProjects, origBrowser := Projects, Browser
	t.Cleanup(func() { Projects, Browser = origProjects, origBrowser })

	opened := false
	Projects = storage.NewProjectStore(t.TempDir(), "")
	Browser = integration.NewBrowserOpenerWithRunner("", "linux", func(name string, args ...string) error {
		opened = true
		return nil
	})

	if err := viewCmd.RunE(viewCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened {
		t.Error("browser should not open without a dashboard")
	}
}

func TestPickerModel_Navigation(t *testing.T) {
	m := pickerModel{items: []pickerItem{
		{label: "Dashboard", path: "/p/dashboard.html"},
		{label: "Overview", path: "/p/overview.html"},
		{label: "Message viewer", path: "/p/messages.html"},
	}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(pickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(pickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(pickerModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped at last item)", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(pickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after k, want 1", m.cursor)
	}
}

func TestPickerModel_SelectAndCancel(t *testing.T) {
	items := []pickerItem{
		{label: "Dashboard", path: "/p/dashboard.html"},
		{label: "Overview", path: "/p/overview.html"},
	}

	m := pickerModel{items: items, cursor: 1}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(pickerModel)
	if m.choice != "/p/overview.html" {
		t.Errorf("choice = %q, want overview path", m.choice)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}

	m = pickerModel{items: items, cursor: 1}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(pickerModel)
	if m.choice != "" {
		t.Errorf("choice = %q after cancel, want empty", m.choice)
	}
}

func TestPickArtifact_SingleDocumentSkipsPicker(t *testing.T) {
	dir := t.TempDir()
	overviewPath := filepath.Join(dir, "overview.html")
	if err := os.WriteFile(overviewPath, []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	origProjects := Projects
	t.Cleanup(func() { Projects = origProjects })
	Projects = storage.NewProjectStore(dir, "")

	picked, err := pickArtifact()
	if err != nil {
		t.Fatalf("pickArtifact: %v", err)
	}
	if picked != overviewPath {
		t.Errorf("picked %q, want %q", picked, overviewPath)
	}
}

func TestPickArtifact_NoDocuments(t *testing.T) {
	origProjects := Projects
	t.Cleanup(func() { Projects = origProjects })
	Projects = storage.NewProjectStore(t.TempDir(), "")

	picked, err := pickArtifact()
	if err != nil {
		t.Fatalf("pickArtifact: %v", err)
	}
	if picked != "" {
		t.Errorf("picked %q, want empty", picked)
	}
}
