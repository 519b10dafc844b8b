// Package main is the entry point for the oxinot-preview CLI.
package main

import (
	"os"

	"github.com/0010capacity/oxinot/internal/cli"
	"github.com/0010capacity/oxinot/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
