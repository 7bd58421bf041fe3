package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// ConfigFileName is the project manifest written by init.
const ConfigFileName = "mango-lollipop.json"

// DefaultOutputDir is where project directories live when no override is
// configured in .mangorc.
const DefaultOutputDir = "output"

// ProjectStore locates and loads project files. Lookups check the working
// directory first, then one level under the output directory, so the CLI
// works both from inside a project and from a workspace holding several
// projects.
type ProjectStore interface {
	FindFile(filename string) (string, bool)
	FindDir(filename string) (string, bool)
	LoadConfig() (*models.ProjectConfig, error)
	SaveConfig(dir string, config *models.ProjectConfig) error
	LoadMatrix(dir string) (*models.Matrix, error)
	LoadAnalysis(dir string) (*models.Analysis, error)
}

type projectStore struct {
	workDir   string
	outputDir string
}

// NewProjectStore creates a ProjectStore rooted at the given working
// directory. An empty outputDir falls back to DefaultOutputDir.
func NewProjectStore(workDir, outputDir string) ProjectStore {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &projectStore{workDir: workDir, outputDir: outputDir}
}

// FindFile searches for filename in the working directory, then in each
// directory directly under the output directory. Returns the first match.
func (s *projectStore) FindFile(filename string) (string, bool) {
	direct := filepath.Join(s.workDir, filename)
	if _, err := os.Stat(direct); err == nil {
		return direct, true
	}

	outputDir := filepath.Join(s.workDir, s.outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(outputDir, entry.Name(), filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// FindDir returns the directory containing filename, using the same search
// order as FindFile.
func (s *projectStore) FindDir(filename string) (string, bool) {
	path, ok := s.FindFile(filename)
	if !ok {
		return "", false
	}
	return filepath.Dir(path), true
}

// LoadConfig reads the project manifest found by FindFile.
func (s *projectStore) LoadConfig() (*models.ProjectConfig, error) {
	path, ok := s.FindFile(ConfigFileName)
	if !ok {
		return nil, fmt.Errorf("no %s found", ConfigFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var config models.ProjectConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// SaveConfig writes the project manifest into dir with two-space indentation.
func (s *projectStore) SaveConfig(dir string, config *models.ProjectConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadMatrix reads matrix.json from the given project directory.
func (s *projectStore) LoadMatrix(dir string) (*models.Matrix, error) {
	path := filepath.Join(dir, "matrix.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matrix: %w", err)
	}
	var matrix models.Matrix
	if err := json.Unmarshal(data, &matrix); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &matrix, nil
}

// LoadAnalysis reads analysis.json from the given project directory.
func (s *projectStore) LoadAnalysis(dir string) (*models.Analysis, error) {
	path := filepath.Join(dir, "analysis.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis: %w", err)
	}
	var analysis models.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &analysis, nil
}
