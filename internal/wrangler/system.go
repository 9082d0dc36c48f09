// Package wrangler is the boundary to the external wrangler CLI: locating
// the binary, its well-known config slot, the interactive login and
// whoami collaborators, and passthrough invocation with a profile's
// credentials overlaid onto the environment.
package wrangler

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Binary is the wrangler executable name resolved on PATH.
const Binary = "wrangler"

// ErrExternalTool wraps failures to locate or launch wrangler. Non-zero
// exits from passthrough invocation are not wrapped with it; they carry
// the exec.ExitError through so the exit code can be propagated.
var ErrExternalTool = errors.New("wrangler unavailable")

// System abstracts process operations needed by the wrangler boundary.
// The interface is package-local to enable parallel-safe unit tests
// without shared global state.
type System interface {
	LookPath(file string) (string, error)
	RunInteractive(path string, args []string, env []string) error
	Output(ctx context.Context, path string, args ...string) ([]byte, error)
	Environ() []string
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// LookPath searches for an executable on PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunInteractive runs the binary inheriting the terminal's stdio. A nil
// env inherits the current process environment.
func (RealSystem) RunInteractive(path string, args []string, env []string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	return cmd.Run()
}

// Output runs the binary non-interactively and returns its stdout. The
// context bounds the run time.
func (RealSystem) Output(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).Output()
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}
