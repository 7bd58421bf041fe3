// Package integration wraps the external surfaces the CLI touches: the
// user's browser and the release feed. Everything here is injectable so
// tests never spawn processes or hit the network.
package integration

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserOpener opens local files in the user's browser.
type BrowserOpener interface {
	// Open opens the given path or URL with the platform opener, or with
	// the configured override command if one is set.
	Open(target string) error
}

// browserOpener implements BrowserOpener.
type browserOpener struct {
	// command overrides the platform opener when non-empty.
	command string
	// goos is injected for testability. Defaults to runtime.GOOS.
	goos string
	// runner is injected for testability. If nil, commands are executed.
	runner func(name string, args ...string) error
}

// NewBrowserOpener creates a BrowserOpener. An empty command selects the
// platform default opener.
func NewBrowserOpener(command string) BrowserOpener {
	return &browserOpener{
		command: command,
		goos:    runtime.GOOS,
		runner:  runCommand,
	}
}

// NewBrowserOpenerWithRunner creates a BrowserOpener with a custom platform
// and command runner for testing.
func NewBrowserOpenerWithRunner(command, goos string, runner func(name string, args ...string) error) BrowserOpener {
	return &browserOpener{command: command, goos: goos, runner: runner}
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open launches the browser detached; it does not wait for it to exit.
func (b *browserOpener) Open(target string) error {
	name, args := b.openerCommand(target)
	if err := b.runner(name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

// openerCommand picks the platform launcher, honoring the override command.
func (b *browserOpener) openerCommand(target string) (string, []string) {
	if b.command != "" {
		return b.command, []string{target}
	}
	switch b.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
