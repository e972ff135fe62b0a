// Package model defines the domain types for the init-submodules CLI.
//
// The only domain entity is the ordered list of directories whose
// submodules get initialized. The rest of this package carries the
// exit codes and the error type the CLI layer uses to turn failures
// into process exit statuses.
package model

import (
	"fmt"
	"strings"
)

// defaultTargetDirs is the build-time list of directories processed by the
// CLI, in execution order. "." is the repository root; the other two are
// nested checkouts that carry their own .gitmodules.
var defaultTargetDirs = []string{
	".",
	"luals_addons/vscode-reascript-extension",
	"luals_addons/LLS-Addons",
}

// TargetList is an immutable, ordered sequence of directory paths.
//
// Paths are stored exactly as given. They are interpreted relative to the
// process's working directory by the operating system when a command is
// started in them; no cleaning or absolutizing happens here.
//
// The zero value is an empty list and is rejected by the Initializer.
type TargetList struct {
	// dirs is never exposed directly. Dirs returns a copy so callers
	// cannot reorder or edit the list after construction.
	dirs []string
}

// NewTargetList validates dirs and returns them as a TargetList.
//
// The list must contain at least one entry, and every entry must be a
// non-empty path without NUL bytes (which no filesystem accepts).
func NewTargetList(dirs ...string) (TargetList, error) {
	if len(dirs) == 0 {
		return TargetList{}, fmt.Errorf("target directory list must not be empty")
	}
	for i, d := range dirs {
		if d == "" {
			return TargetList{}, fmt.Errorf("target directory #%d must not be empty", i)
		}
		if strings.ContainsRune(d, 0) {
			return TargetList{}, fmt.Errorf("target directory #%d %q contains a NUL byte", i, d)
		}
	}

	// Copy so later changes to the caller's slice do not leak in.
	owned := make([]string, len(dirs))
	copy(owned, dirs)
	return TargetList{dirs: owned}, nil
}

// DefaultTargets returns the compiled-in directory list.
func DefaultTargets() TargetList {
	targets, err := NewTargetList(defaultTargetDirs...)
	if err != nil {
		// The default list is a literal; failing here is a programming error.
		panic(err)
	}
	return targets
}

// Dirs returns a copy of the directories in execution order.
func (t TargetList) Dirs() []string {
	out := make([]string, len(t.dirs))
	copy(out, t.dirs)
	return out
}

// Len returns the number of directories in the list.
func (t TargetList) Len() int {
	return len(t.dirs)
}

// String returns the directories joined with ", " for log and error output.
func (t TargetList) String() string {
	return strings.Join(t.dirs, ", ")
}

// ExitCode defines the process exit codes of the CLI.
type ExitCode int

const (
	// ExitSuccess indicates every target directory was processed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates the run stopped on a failure. Submodule
	// failures use this code as well, whatever git itself exited with.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
