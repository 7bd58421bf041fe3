package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// InitConfig holds the parameters for initializing a project workspace.
type InitConfig struct {
	BasePath string
	Name     string
}

// InitResult holds a summary of what was created vs. skipped.
type InitResult struct {
	Created []string
	Skipped []string
}

// ProjectInitializer defines the interface for initializing a full
// project workspace with per-stage message folders and workflow skills.
type ProjectInitializer interface {
	Init(config InitConfig) (*InitResult, error)
}

type projectInitializer struct {
	templates *projectTemplates
	now       func() time.Time
}

// NewProjectInitializer creates a new ProjectInitializer.
func NewProjectInitializer() ProjectInitializer {
	return &projectInitializer{
		templates: newProjectTemplates(),
		now:       time.Now,
	}
}

// skillNames are the workflow skills scaffolded into every new project,
// matched by the CLI hints that tell the user which skill to run next.
var skillNames = []string{
	"start",
	"audit",
	"generate-matrix",
	"generate-messages",
	"generate-dashboard",
}

// Init creates the project workspace: one message folder per stage, the copy
// template directory, the workflow skills, CLAUDE.md, and the initial
// mango-lollipop.json manifest. It is safe to run on existing projects:
// files and directories that already exist are skipped and not overwritten.
func (pi *projectInitializer) Init(config InitConfig) (*InitResult, error) {
	result := &InitResult{}

	if config.Name == "" {
		config.Name = filepath.Base(config.BasePath)
	}

	dirs := []string{
		config.BasePath,
		filepath.Join(config.BasePath, "templates"),
		filepath.Join(config.BasePath, ".claude"),
		filepath.Join(config.BasePath, ".claude", "skills"),
	}
	for _, stage := range models.StageOrder {
		dirs = append(dirs, filepath.Join(config.BasePath, "messages", string(stage)))
	}
	for _, skill := range skillNames {
		dirs = append(dirs, filepath.Join(config.BasePath, ".claude", "skills", skill))
	}
	for _, dir := range dirs {
		created, err := ensureDir(dir)
		if err != nil {
			return nil, fmt.Errorf("initializing project: creating directory %s: %w", dir, err)
		}
		if created {
			result.Created = append(result.Created, dir)
		} else {
			result.Skipped = append(result.Skipped, dir)
		}
	}

	// Write CLAUDE.md (rendered with text/template).
	claudePath := filepath.Join(config.BasePath, "CLAUDE.md")
	if err := pi.writeFileIfNotExists(claudePath, func() ([]byte, error) {
		return pi.renderTemplate("claude-md.md", config)
	}, result); err != nil {
		return nil, err
	}

	// Write the message copy template.
	messageTemplatePath := filepath.Join(config.BasePath, "templates", "message.md")
	if err := pi.writeStaticTemplate(messageTemplatePath, "message.md", result); err != nil {
		return nil, err
	}

	// Write one SKILL.md per workflow skill.
	for _, skill := range skillNames {
		target := filepath.Join(config.BasePath, ".claude", "skills", skill, "SKILL.md")
		if err := pi.writeStaticTemplate(target, "skill-"+skill+".md", result); err != nil {
			return nil, err
		}
	}

	// Write the initial project manifest.
	manifestPath := filepath.Join(config.BasePath, "mango-lollipop.json")
	if err := pi.writeFileIfNotExists(manifestPath, func() ([]byte, error) {
		manifest := models.ProjectConfig{
			Name:     config.Name,
			Version:  "0.1.0",
			Created:  pi.now().UTC().Format(time.RFC3339),
			Stage:    "initialized",
			Channels: []models.Channel{},
		}
		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding manifest: %w", err)
		}
		return append(data, '\n'), nil
	}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ensureDir creates a directory if it does not exist. Returns true if created.
func ensureDir(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileIfNotExists writes content from contentFn if the file does not exist.
// It records created/skipped in the result.
func (pi *projectInitializer) writeFileIfNotExists(path string, contentFn func() ([]byte, error), result *InitResult) error {
	if _, err := os.Stat(path); err == nil {
		result.Skipped = append(result.Skipped, path)
		return nil
	}
	content, err := contentFn()
	if err != nil {
		return fmt.Errorf("initializing project: generating content for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("initializing project: writing %s: %w", path, err)
	}
	result.Created = append(result.Created, path)
	return nil
}

// writeStaticTemplate reads an embedded scaffold file by name and writes it
// to the target path without any rendering. Records created/skipped in result.
func (pi *projectInitializer) writeStaticTemplate(target, templateName string, result *InitResult) error {
	return pi.writeFileIfNotExists(target, func() ([]byte, error) {
		content, err := pi.templates.Get(templateName)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	}, result)
}

// renderTemplate reads an embedded scaffold file by name, renders it with
// text/template using the given data, and returns the rendered bytes.
func (pi *projectInitializer) renderTemplate(templateName string, data any) ([]byte, error) {
	tmplContent, err := pi.templates.Get(templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", templateName, err)
	}
	tmpl, err := template.New(templateName).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", templateName, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", templateName, err)
	}
	return buf.Bytes(), nil
}
