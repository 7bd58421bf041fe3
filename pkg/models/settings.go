package models

// Settings holds tool-level preferences read from .mangorc. These describe
// how the CLI behaves on this machine; project state lives in
// mango-lollipop.json instead.
type Settings struct {
	// OutputDir is the workspace directory searched for projects.
	OutputDir string
	// BrowserCommand overrides the platform default used by `view`.
	BrowserCommand string
	// EventLog enables the JSONL activity log.
	EventLog bool
}
