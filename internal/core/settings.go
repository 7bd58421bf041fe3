package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// SettingsManager defines the interface for loading and validating the
// tool-level .mangorc settings file.
type SettingsManager interface {
	LoadSettings() (*models.Settings, error)
	ValidateSettings(settings *models.Settings) error
}

// viperSettingsManager implements SettingsManager using Viper for reading
// YAML settings files.
type viperSettingsManager struct {
	// basePath is the directory where .mangorc resides.
	basePath string
}

// NewSettingsManager creates a SettingsManager that reads .mangorc relative
// to basePath.
func NewSettingsManager(basePath string) SettingsManager {
	return &viperSettingsManager{basePath: basePath}
}

// defaultSettings returns Settings populated with sensible defaults.
func defaultSettings() *models.Settings {
	return &models.Settings{
		OutputDir:      "output",
		BrowserCommand: "",
		EventLog:       true,
	}
}

// LoadSettings reads the .mangorc file from the base path using Viper.
// If the file does not exist, defaults are returned.
func (sm *viperSettingsManager) LoadSettings() (*models.Settings, error) {
	settings := defaultSettings()

	v := viper.New()
	v.SetConfigName(".mangorc")
	v.SetConfigType("yaml")
	v.AddConfigPath(sm.basePath)

	v.SetDefault("output.dir", settings.OutputDir)
	v.SetDefault("browser.command", settings.BrowserCommand)
	v.SetDefault("events.enabled", settings.EventLog)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return settings, nil
		}
		return nil, fmt.Errorf("reading .mangorc: %w", err)
	}

	settings.OutputDir = v.GetString("output.dir")
	settings.BrowserCommand = v.GetString("browser.command")
	settings.EventLog = v.GetBool("events.enabled")

	return settings, nil
}

// ValidateSettings checks the settings for invalid values and returns a
// clear error message identifying the problem.
func (sm *viperSettingsManager) ValidateSettings(settings *models.Settings) error {
	if settings == nil {
		return fmt.Errorf("settings are nil")
	}

	var errs []string

	if settings.OutputDir == "" {
		errs = append(errs, "output.dir must not be empty")
	}
	if strings.ContainsAny(settings.OutputDir, "\n\r") {
		errs = append(errs, "output.dir must be a single-line path")
	}

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
