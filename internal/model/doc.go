// Package model defines the domain types for the init-submodules CLI.
//
// Types in this package are plain values shared between the submodule
// and cli packages:
//   - TargetList: the ordered, immutable list of directories to process
//   - ExitCode / CLIError: process exit statuses and the error carrying them
package model
