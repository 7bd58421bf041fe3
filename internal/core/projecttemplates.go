package core

import "fmt"

// projectTemplates provides access to the embedded project scaffold files
// written into every new project by init.
type projectTemplates struct{}

func newProjectTemplates() *projectTemplates {
	return &projectTemplates{}
}

// Get returns the content of an embedded scaffold file by filename. The name
// is the filename within templates/project/ (e.g. "claude-md.md").
func (pt *projectTemplates) Get(name string) (string, error) {
	data, err := templateFS.ReadFile("templates/project/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(data), nil
}
