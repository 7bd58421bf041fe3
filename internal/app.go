// Package internal provides the App struct that wires all components of
// Mango Lollipop together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sr-kai/mango-lollipop/internal/cli"
	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/internal/integration"
	"github.com/sr-kai/mango-lollipop/internal/observability"
	"github.com/sr-kai/mango-lollipop/internal/storage"
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// App holds all service dependencies for the Mango Lollipop CLI.
type App struct {
	WorkDir  string
	Settings *models.Settings

	// Core services
	SettingsMgr core.SettingsManager
	ProjectInit core.ProjectInitializer

	// Storage layer
	Projects storage.ProjectStore
	Contents storage.ContentStore

	// Integration services
	Browser  integration.BrowserOpener
	Releases integration.ReleaseChecker

	// Observability
	EventLog observability.EventLog
}

// NewApp creates and wires all components. workDir is the directory the
// CLI was invoked from; project files are resolved relative to it.
func NewApp(workDir string) (*App, error) {
	app := &App{WorkDir: workDir}

	// --- Settings ---
	app.SettingsMgr = core.NewSettingsManager(workDir)
	settings, err := app.SettingsMgr.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if err := app.SettingsMgr.ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	app.Settings = settings

	// --- Storage layer ---
	app.Projects = storage.NewProjectStore(workDir, settings.OutputDir)
	app.Contents = storage.NewContentStore()

	// --- Core services ---
	app.ProjectInit = core.NewProjectInitializer()

	// --- Integration services ---
	app.Browser = integration.NewBrowserOpener(settings.BrowserCommand)
	app.Releases = integration.NewReleaseChecker()

	// --- Observability ---
	// The event log lives next to the project manifest. Without a project,
	// or when disabled in .mangorc, events are discarded.
	app.EventLog = observability.NewNopEventLog()
	if settings.EventLog {
		if projectDir, ok := app.Projects.FindDir(storage.ConfigFileName); ok {
			logPath := filepath.Join(projectDir, observability.EventLogFileName)
			if eventLog, logErr := observability.NewJSONLEventLog(logPath); logErr == nil {
				app.EventLog = eventLog
			}
			// Non-fatal: keep the nop log if the file can't be created.
		}
	}

	// --- Wire CLI package-level variables ---
	cli.Settings = app.Settings
	cli.ProjectInit = app.ProjectInit
	cli.Projects = app.Projects
	cli.Contents = app.Contents
	cli.Browser = app.Browser
	cli.Releases = app.Releases
	cli.EventLog = app.EventLog

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveWorkDir determines the working directory for project lookups.
// MANGO_HOME overrides the current directory when set.
func ResolveWorkDir() string {
	if home := os.Getenv("MANGO_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
