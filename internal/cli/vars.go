package cli

import (
	"github.com/sr-kai/mango-lollipop/internal/core"
	"github.com/sr-kai/mango-lollipop/internal/integration"
	"github.com/sr-kai/mango-lollipop/internal/observability"
	"github.com/sr-kai/mango-lollipop/internal/storage"
	"github.com/sr-kai/mango-lollipop/pkg/models"
)

// Service instances used by the commands, set during application wiring
// in app.go.
var (
	Settings    *models.Settings
	ProjectInit core.ProjectInitializer
	Projects    storage.ProjectStore
	Contents    storage.ContentStore
	Browser     integration.BrowserOpener
	Releases    integration.ReleaseChecker
	EventLog    observability.EventLog
)

// logEvent records an event when the event log is wired. Logging is best
// effort and never fails a command.
func logEvent(eventType, message string, data map[string]any) {
	if EventLog == nil {
		return
	}
	_ = EventLog.Info(eventType, message, data)
}
