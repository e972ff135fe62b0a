// Package main is the entry point for the init-submodules CLI.
//
// This binary initializes git submodules in the repository root and in
// the nested addon checkouts. It delegates all functionality to the
// internal/cli package, which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release build. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/init-submodules/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute handles error logging and exit codes.
	cli.Execute(cli.NewRootCommand())
}
