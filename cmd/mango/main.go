package main

import (
	"fmt"
	"os"

	app "github.com/sr-kai/mango-lollipop/internal"
	"github.com/sr-kai/mango-lollipop/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	workDir := app.ResolveWorkDir()

	a, err := app.NewApp(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing mango: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = a.Close() }()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
