package wrangler

import (
	"fmt"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
)

// Invoke runs wrangler with the profile's credentials overlaid onto the
// invoking process's environment, inheriting the terminal. wranglerEnv,
// when non-empty, is appended as wrangler's own --env selector. The
// returned error carries wrangler's exec.ExitError through unwrapped
// chains so the caller can propagate the exit code as its own.
func Invoke(sys System, rec profile.Record, wranglerEnv string, args []string) error {
	path, err := sys.LookPath(Binary)
	if err != nil {
		return fmt.Errorf(messages.WranglerNotFoundFmt, ErrExternalTool, err)
	}

	env := sys.Environ()
	if _, ok := rec.TokenCredential(); !ok {
		// An inherited shell token would override the OAuth session
		// installed at activation; drop it for this invocation only.
		env = UnsetEnv(env, profile.EnvAPIToken)
	}
	env = OverlayEnv(env, ProfileEnv(rec))

	if wranglerEnv != "" {
		args = append(args, "--env", wranglerEnv)
	}

	if err := sys.RunInteractive(path, args, env); err != nil {
		return fmt.Errorf(messages.WranglerExitFmt, err)
	}
	return nil
}
