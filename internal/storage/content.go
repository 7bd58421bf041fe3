package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// messageIDPattern extracts the message ID prefix from a copy filename,
// e.g. "AQ-1-welcome.md" yields "AQ-1".
var messageIDPattern = regexp.MustCompile(`^([A-Z]+-\d+)`)

// messageMeta is the YAML frontmatter carried by message copy files.
type messageMeta struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Stage   string `yaml:"stage"`
	Channel string `yaml:"channel"`
}

// ContentStore reads generated message copy from a project's messages tree.
type ContentStore interface {
	LoadMessageContent(projectDir string) (map[string]string, error)
}

type contentStore struct{}

// NewContentStore creates a ContentStore.
func NewContentStore() ContentStore {
	return &contentStore{}
}

// LoadMessageContent walks messages/<STAGE>/ for every stage and returns the
// markdown body of each copy file keyed by message ID. Frontmatter is
// stripped; a parseable frontmatter id wins over the filename prefix. Files
// without either are skipped. Missing stage directories are not an error:
// copy is generated incrementally.
func (cs *contentStore) LoadMessageContent(projectDir string) (map[string]string, error) {
	content := make(map[string]string)
	messagesDir := filepath.Join(projectDir, "messages")

	for _, stage := range models.StageOrder {
		stageDir := filepath.Join(messagesDir, string(stage))
		entries, err := os.ReadDir(stageDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", stageDir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(stageDir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
			}

			meta, body := core.StripFrontmatter(string(raw))

			id := ""
			if meta != "" {
				var parsed messageMeta
				if err := yaml.Unmarshal([]byte(meta), &parsed); err == nil {
					id = parsed.ID
				}
			}
			if id == "" {
				if m := messageIDPattern.FindStringSubmatch(entry.Name()); m != nil {
					id = m[1]
				}
			}
			if id == "" {
				continue
			}
			content[id] = strings.TrimSpace(body)
		}
	}

	return content, nil
}
