package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestJSONLEventLog_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), EventLogFileName)

	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	defer func() { _ = log.Close() }()

	events := []Event{
		{Time: time.Now().UTC(), Level: "INFO", Type: EventProjectInitialized, Message: "project created"},
		{Time: time.Now().UTC(), Level: "INFO", Type: EventExportCompleted, Message: "excel export", Data: map[string]any{"format": "excel"}},
		{Time: time.Now().UTC(), Level: "ERROR", Type: EventExportCompleted, Message: "html export failed"},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Type != EventProjectInitialized {
		t.Errorf("first event type = %q, want %q", got[0].Type, EventProjectInitialized)
	}
	if got[1].Data["format"] != "excel" {
		t.Errorf("second event data = %v, want format=excel", got[1].Data)
	}
}

func TestJSONLEventLog_Info(t *testing.T) {
	path := filepath.Join(t.TempDir(), EventLogFileName)

	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	defer func() { _ = log.Close() }()

	before := time.Now().UTC().Add(-time.Second)
	if err := log.Info(EventViewOpened, "opened dashboard", map[string]any{"file": "dashboard.html"}); err != nil {
		t.Fatalf("Info: %v", err)
	}

	got, err := log.Read(EventFilter{Type: EventViewOpened})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Level != "INFO" {
		t.Errorf("level = %q, want INFO", got[0].Level)
	}
	if got[0].Time.Before(before) {
		t.Errorf("event time %v predates the call", got[0].Time)
	}
}

func TestJSONLEventLog_Filtering(t *testing.T) {
	path := filepath.Join(t.TempDir(), EventLogFileName)

	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	defer func() { _ = log.Close() }()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	writes := []Event{
		{Time: base, Level: "INFO", Type: EventProjectInitialized, Message: "a"},
		{Time: base.Add(time.Hour), Level: "INFO", Type: EventExportCompleted, Message: "b"},
		{Time: base.Add(2 * time.Hour), Level: "ERROR", Type: EventExportCompleted, Message: "c"},
	}
	for _, e := range writes {
		if err := log.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter EventFilter
		want   []string
	}{
		{
			name:   "by type",
			filter: EventFilter{Type: EventExportCompleted},
			want:   []string{"b", "c"},
		},
		{
			name:   "by level",
			filter: EventFilter{Level: "ERROR"},
			want:   []string{"c"},
		},
		{
			name: "since",
			filter: EventFilter{
				Since: timePtr(base.Add(30 * time.Minute)),
			},
			want: []string{"b", "c"},
		},
		{
			name: "until",
			filter: EventFilter{
				Until: timePtr(base.Add(30 * time.Minute)),
			},
			want: []string{"a"},
		},
		{
			name: "combined",
			filter: EventFilter{
				Type:  EventExportCompleted,
				Level: "INFO",
			},
			want: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := log.Read(tt.filter)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Message != tt.want[i] {
					t.Errorf("event[%d].Message = %q, want %q", i, e.Message, tt.want[i])
				}
			}
		})
	}
}

func TestJSONLEventLog_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), EventLogFileName)

	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	if err := log.Write(Event{Time: time.Now().UTC(), Level: "INFO", Type: EventViewOpened, Message: "ok"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString("not json\n\n{\"broken\n"); err != nil {
		t.Fatalf("append garbage: %v", err)
	}
	_ = f.Close()

	reopened, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 valid event, got %d", len(got))
	}
	if got[0].Message != "ok" {
		t.Errorf("message = %q, want %q", got[0].Message, "ok")
	}
}

func TestJSONLEventLog_ReadMissingFile(t *testing.T) {
	log := &jsonlEventLog{path: filepath.Join(t.TempDir(), "absent.jsonl")}

	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil events, got %v", got)
	}
}

func TestNopEventLog(t *testing.T) {
	log := NewNopEventLog()

	if err := log.Write(Event{Type: EventExportCompleted}); err != nil {
		t.Errorf("Write: %v", err)
	}
	if err := log.Info(EventViewOpened, "ignored", nil); err != nil {
		t.Errorf("Info: %v", err)
	}
	got, err := log.Read(EventFilter{})
	if err != nil {
		t.Errorf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
