// Package cli implements the cobra-based command line surface of
// init-submodules.
//
// The tool has a single root command and no subcommands. This file builds
// that command, wires the logger and the process runner into the
// submodule Initializer, and translates the result into an exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/init-submodules/internal/model"
	"github.com/mmr-tortoise/init-submodules/internal/submodule"
)

// logPrefix is printed in front of every log line so the tool's own
// messages stand apart from git's output on the shared terminal.
const logPrefix = "init-submodules"

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates the root command wired to the compiled-in target
// directories and the real git binary.
func NewRootCommand() *cobra.Command {
	return newRootCommand(model.DefaultTargets(), submodule.NewExecRunner())
}

// newRootCommand builds the root command around an explicit target list
// and Runner. Tests use it to substitute both.
func newRootCommand(targets model.TargetList, runner submodule.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "init-submodules",
		Short: "Initialize git submodules in the project and its addon checkouts",
		Long: fmt.Sprintf(`init-submodules runs

  git submodule update --init --checkout --depth=1

in each of the following directories, in order:

  %s

Git's own output is shown as it runs. The first directory that fails
stops the run and the process exits with status 1.`, targets.String()),

		// Directories and command are fixed; nothing is read from argv.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors leaves error output to Execute, which logs it.
		SilenceUsage:  true,
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), targets, runner, newLogger(cmd.ErrOrStderr()))
		},
	}

	return rootCmd
}

// runInit runs the Initializer and converts a *submodule.Failure into a
// CLIError carrying ExitGeneralError.
func runInit(ctx context.Context, targets model.TargetList, runner submodule.Runner, logger *log.Logger) error {
	err := submodule.NewInitializer(targets, runner, logger).Run(ctx)
	if err == nil {
		return nil
	}

	var f *submodule.Failure
	if errors.As(err, &f) {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("Failed to initialize submodules in %s", f.Dir), f.Err)
	}
	return err
}

// newLogger returns the logger used for progress and error lines.
// Timestamps are off: the output is read interleaved with git's.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          logPrefix,
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(execute(rootCmd)))
}

// execute runs rootCmd, logs any error, and returns the exit code instead
// of exiting, so the error path can be tested in-process.
//
// CLIError types carry their own exit codes; other errors (for example an
// unexpected positional argument) default to exit code 1.
func execute(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return model.ExitSuccess
	}

	logger := newLogger(rootCmd.ErrOrStderr())

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		logger.Error(cliErr.Error())
		return cliErr.Code
	}

	logger.Error(err.Error())
	return model.ExitGeneralError
}
