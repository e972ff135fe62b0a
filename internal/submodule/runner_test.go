package submodule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperEnv switches the test binary into TestHelperProcess mode when set.
const helperEnv = "INIT_SUBMODULES_HELPER_PROCESS"

// helperExitEnv holds the exit status TestHelperProcess terminates with.
const helperExitEnv = "INIT_SUBMODULES_HELPER_EXIT"

// TestHelperProcess is not a real test. It is the child process spawned by
// the ExecRunner tests: it prints its working directory, echoes stdin to
// stdout, writes a marker to stderr, and exits with the requested status.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	wd, _ := os.Getwd()
	fmt.Fprintf(os.Stdout, "cwd=%s\n", wd)
	_, _ = io.Copy(os.Stdout, os.Stdin)
	fmt.Fprintln(os.Stderr, "helper-stderr")

	code, _ := strconv.Atoi(os.Getenv(helperExitEnv))
	os.Exit(code)
}

// runHelper starts TestHelperProcess through ExecRunner in dir, exiting
// with exitCode, and returns the captured stdout/stderr and Run's error.
func runHelper(t *testing.T, dir string, exitCode int, stdin string) (string, string, error) {
	t.Helper()

	t.Setenv(helperEnv, "1")
	t.Setenv(helperExitEnv, strconv.Itoa(exitCode))

	var stdout, stderr bytes.Buffer
	r := &ExecRunner{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	err := r.Run(context.Background(), dir, os.Args[0], "-test.run=^TestHelperProcess$")
	return stdout.String(), stderr.String(), err
}

// TestExecRunner_Success verifies that the child runs in the requested
// directory and that all three standard streams are connected.
func TestExecRunner_Success(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runHelper(t, dir, 0, "piped-input")
	require.NoError(t, err)

	// Resolve symlinks on both sides: on macOS t.TempDir() lives under
	// /var, which is a symlink to /private/var.
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	firstLine, rest, _ := strings.Cut(stdout, "\n")
	gotDir, err := filepath.EvalSymlinks(strings.TrimPrefix(firstLine, "cwd="))
	require.NoError(t, err)

	assert.Equal(t, wantDir, gotDir)
	assert.Contains(t, rest, "piped-input")
	assert.Contains(t, stderr, "helper-stderr")
}

// TestExecRunner_NonZeroExit verifies that a failing child surfaces as an
// error exposing its exit status.
func TestExecRunner_NonZeroExit(t *testing.T) {
	_, _, err := runHelper(t, t.TempDir(), 3, "")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())

	f := newFailure(0, "X", err)
	assert.Equal(t, KindExit, f.Kind)
	assert.Equal(t, 3, f.ExitCode)
}

// TestExecRunner_MissingDirectory verifies that a non-existent working
// directory fails at start with a not-found error.
func TestExecRunner_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, _, err := runHelper(t, missing, 0, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	f := newFailure(2, missing, err)
	assert.Equal(t, KindStart, f.Kind)
	assert.Equal(t, -1, f.ExitCode)
	assert.Contains(t, f.Error(), missing)
}

// TestExecRunner_MissingExecutable verifies that a binary missing from
// PATH is reported as a start failure.
func TestExecRunner_MissingExecutable(t *testing.T) {
	r := &ExecRunner{Stdout: io.Discard, Stderr: io.Discard}

	err := r.Run(context.Background(), t.TempDir(), "init-submodules-no-such-binary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound), "got %v", err)
	assert.Equal(t, KindStart, newFailure(0, ".", err).Kind)
}

func TestNewExecRunner_InheritsStdio(t *testing.T) {
	r := NewExecRunner()
	assert.Equal(t, os.Stdin, r.Stdin)
	assert.Equal(t, os.Stdout, r.Stdout)
	assert.Equal(t, os.Stderr, r.Stderr)
}
