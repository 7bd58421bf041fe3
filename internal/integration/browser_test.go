package integration

import (
	"errors"
	"testing"
)

func TestBrowserOpener_PlatformCommands(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArg0 string
	}{
		{"darwin", "open", "dashboard.html"},
		{"windows", "rundll32", "url.dll,FileProtocolHandler"},
		{"linux", "xdg-open", "dashboard.html"},
		{"freebsd", "xdg-open", "dashboard.html"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			opener := NewBrowserOpenerWithRunner("", tt.goos, func(name string, args ...string) error {
				gotName = name
				gotArgs = args
				return nil
			})

			if err := opener.Open("dashboard.html"); err != nil {
				t.Fatalf("Open: %v", err)
			}
			if gotName != tt.wantName {
				t.Errorf("command = %q, want %q", gotName, tt.wantName)
			}
			if len(gotArgs) == 0 || gotArgs[0] != tt.wantArg0 {
				t.Errorf("args = %v", gotArgs)
			}
		})
	}
}

func TestBrowserOpener_OverrideCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	opener := NewBrowserOpenerWithRunner("firefox", "linux", func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	})

	if err := opener.Open("overview.html"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName != "firefox" {
		t.Errorf("command = %q, want override", gotName)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "overview.html" {
		t.Errorf("args = %v", gotArgs)
	}
}

func TestBrowserOpener_RunnerErrorWrapped(t *testing.T) {
	opener := NewBrowserOpenerWithRunner("", "linux", func(string, ...string) error {
		return errors.New("spawn failed")
	})
	err := opener.Open("messages.html")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "opening messages.html: spawn failed" {
		t.Errorf("error = %q", got)
	}
}
