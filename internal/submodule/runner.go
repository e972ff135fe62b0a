package submodule

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// GitBinary is the executable the Initializer invokes. It is resolved
// through PATH by os/exec.
const GitBinary = "git"

// UpdateArgs returns the arguments passed to GitBinary in every target
// directory: `git submodule update --init --checkout --depth=1`.
//
//   - --init registers submodules listed in .gitmodules that are not yet
//     in .git/config
//   - --checkout checks out the recorded commit as a detached HEAD, even if
//     submodule.<name>.update is configured otherwise
//   - --depth=1 fetches a shallow history to keep the transfer small
//
// A fresh slice is returned on each call so callers may append to it.
func UpdateArgs() []string {
	return []string{"submodule", "update", "--init", "--checkout", "--depth=1"}
}

// Runner starts an external command in a working directory and waits for
// it to finish.
//
// Run returns nil when the command exits with status 0. Any other outcome
// (the command could not be started, or exited non-zero) is returned as an
// error. Implementations that report a non-zero exit should return an
// error exposing `ExitCode() int`, as *exec.ExitError does, so the
// Initializer can tell the two apart.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner is the production Runner. It spawns the command with os/exec
// and wires the child's standard streams straight to the configured
// readers/writers, so git's progress output and any credential prompts
// reach the user unchanged.
type ExecRunner struct {
	// Stdin, Stdout and Stderr are handed to the child process as-is.
	// When they are *os.File values (the default), the child inherits the
	// file descriptors directly and no copying goroutines are involved.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner connected to the current process's
// stdin, stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes name with args in dir and blocks until the child exits.
//
// dir is assigned to cmd.Dir verbatim. If it does not exist, starting the
// process fails with an error satisfying errors.Is(err, fs.ErrNotExist).
// A missing executable yields an error wrapping exec.ErrNotFound.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	// #nosec G204 — name and args come from compiled-in constants
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// Run = Start + Wait. Both start failures and non-zero exits surface
	// here; the caller classifies them.
	return cmd.Run()
}
