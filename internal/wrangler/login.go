package wrangler

import (
	"fmt"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

// Login runs the interactive 'wrangler login' browser flow, inheriting
// the terminal. On success wrangler writes a fresh OAuth session into its
// config slot; callers capture it from there. No retries: a failed login
// is surfaced immediately and the user re-runs the command.
func Login(sys System) error {
	path, err := sys.LookPath(Binary)
	if err != nil {
		return fmt.Errorf(messages.WranglerNotFoundFmt, ErrExternalTool, err)
	}
	if err := sys.RunInteractive(path, []string{"login"}, nil); err != nil {
		return fmt.Errorf(messages.WranglerLoginFailedFmt, ErrExternalTool, err)
	}
	return nil
}
