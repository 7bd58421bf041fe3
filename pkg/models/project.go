package models

// ProjectConfig is the on-disk shape of mango-lollipop.json, the project
// manifest written by init and updated as the external workflow progresses.
type ProjectConfig struct {
	Name     string       `json:"name"`
	Version  string       `json:"version"`
	Created  string       `json:"created"`
	Stage    string       `json:"stage"`
	Path     AnalysisPath `json:"path,omitempty"`
	Channels []Channel    `json:"channels"`
	Analysis *Analysis    `json:"analysis"`
	Matrix   *Matrix      `json:"matrix"`
}
