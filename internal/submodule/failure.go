package submodule

import (
	"errors"
	"fmt"
)

// Kind classifies why a directory failed.
type Kind string

const (
	// KindStart means the command could not be started at all, e.g. the
	// directory does not exist or git is not on PATH.
	KindStart Kind = "start"

	// KindExit means git ran but exited with a non-zero status.
	KindExit Kind = "exit"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// exitCoder is satisfied by *exec.ExitError and by test doubles that
// simulate a process exiting with a given status.
type exitCoder interface {
	ExitCode() int
}

// Failure is the result of a run that stopped early. It names the directory
// that failed and keeps the underlying error for errors.Is/errors.As.
type Failure struct {
	// Dir is the target directory exactly as it appears in the list.
	Dir string

	// Index is Dir's zero-based position in the target list. Every
	// directory before it succeeded; none after it was attempted.
	Index int

	// Kind tells a start failure from a non-zero exit.
	Kind Kind

	// ExitCode is git's exit status for KindExit, -1 for KindStart.
	ExitCode int

	// Err is the error returned by the Runner.
	Err error
}

// newFailure classifies err and wraps it with the directory context.
func newFailure(index int, dir string, err error) *Failure {
	f := &Failure{
		Dir:      dir,
		Index:    index,
		Kind:     KindStart,
		ExitCode: -1,
		Err:      err,
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		f.Kind = KindExit
		f.ExitCode = ec.ExitCode()
	}
	return f
}

// Error renders "failed to initialize submodules in <dir>: <reason>".
func (f *Failure) Error() string {
	return fmt.Sprintf("failed to initialize submodules in %s: %v", f.Dir, f.Err)
}

// Unwrap returns the underlying Runner error.
func (f *Failure) Unwrap() error {
	return f.Err
}
