package submodule

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mmr-tortoise/init-submodules/internal/model"
)

// Initializer runs `git submodule update` in each target directory, in
// order, and stops at the first directory that fails.
//
// Usage:
//
//	si := submodule.NewInitializer(model.DefaultTargets(), submodule.NewExecRunner(), logger)
//	if err := si.Run(ctx); err != nil {
//		var f *submodule.Failure
//		errors.As(err, &f) // f.Dir names the directory that failed
//	}
type Initializer struct {
	targets model.TargetList
	runner  Runner
	logger  *log.Logger
}

// NewInitializer creates an Initializer over targets.
//
// runner performs the actual process execution; pass NewExecRunner() in
// production. logger receives one info line per directory; nil discards.
func NewInitializer(targets model.TargetList, runner Runner, logger *log.Logger) *Initializer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Initializer{
		targets: targets,
		runner:  runner,
		logger:  logger,
	}
}

// Run processes every target directory sequentially.
//
// It returns nil when git succeeded in every directory. Otherwise it
// returns a *Failure for the first directory that failed; the directories
// after it are never touched and submodules already initialized in earlier
// directories are left in place.
func (i *Initializer) Run(ctx context.Context) error {
	if i.targets.Len() == 0 {
		return fmt.Errorf("no target directories configured")
	}

	for idx, dir := range i.targets.Dirs() {
		i.logger.Infof("Initializing submodules in %s", dir)

		if err := i.runner.Run(ctx, dir, GitBinary, UpdateArgs()...); err != nil {
			return newFailure(idx, dir, err)
		}
	}

	return nil
}
