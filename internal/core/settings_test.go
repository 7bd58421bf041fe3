package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_DefaultsWhenMissing(t *testing.T) {
	sm := NewSettingsManager(t.TempDir())
	settings, err := sm.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.OutputDir != "output" {
		t.Errorf("output dir = %q", settings.OutputDir)
	}
	if !settings.EventLog {
		t.Error("event log disabled by default")
	}
	if settings.BrowserCommand != "" {
		t.Errorf("browser command = %q", settings.BrowserCommand)
	}
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	rc := "output:\n  dir: projects\nbrowser:\n  command: firefox\nevents:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(dir, ".mangorc"), []byte(rc), 0o600); err != nil {
		t.Fatalf("writing .mangorc: %v", err)
	}

	settings, err := NewSettingsManager(dir).LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.OutputDir != "projects" {
		t.Errorf("output dir = %q", settings.OutputDir)
	}
	if settings.BrowserCommand != "firefox" {
		t.Errorf("browser command = %q", settings.BrowserCommand)
	}
	if settings.EventLog {
		t.Error("event log not disabled")
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".mangorc"), []byte("browser:\n  command: open\n"), 0o600); err != nil {
		t.Fatalf("writing .mangorc: %v", err)
	}

	settings, err := NewSettingsManager(dir).LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.OutputDir != "output" {
		t.Errorf("output dir default lost: %q", settings.OutputDir)
	}
	if settings.BrowserCommand != "open" {
		t.Errorf("browser command = %q", settings.BrowserCommand)
	}
}

func TestValidateSettings(t *testing.T) {
	sm := NewSettingsManager(t.TempDir())

	if err := sm.ValidateSettings(nil); err == nil {
		t.Error("nil settings passed validation")
	}

	ok, _ := sm.LoadSettings()
	if err := sm.ValidateSettings(ok); err != nil {
		t.Errorf("default settings rejected: %v", err)
	}

	bad := *ok
	bad.OutputDir = ""
	if err := sm.ValidateSettings(&bad); err == nil {
		t.Error("empty output dir passed validation")
	}
}
