// Package submodule initializes git submodules across a fixed list of
// directories for the init-submodules CLI.
//
// All fetching and checkout work is delegated to the git binary
// (`git submodule update --init --checkout --depth=1`). This package only
// sequences the invocations and classifies failures:
//   - Runner abstracts process execution so tests can substitute a fake
//   - ExecRunner is the os/exec implementation, with inherited stdio
//   - Initializer walks the TargetList and stops at the first failure
//   - Failure reports which directory failed and why
package submodule
