package wrangler

import (
	"context"
	"regexp"
	"time"
)

// whoamiTimeout bounds the non-interactive whoami probe.
const whoamiTimeout = 15 * time.Second

var (
	accountIDPattern = regexp.MustCompile(`\b[0-9a-f]{32}\b`)
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// Identity is the account identification parsed from 'wrangler whoami'.
type Identity struct {
	Email     string
	AccountID string
}

// Whoami asks wrangler who is currently logged in. Detection is
// best-effort: a missing binary, non-zero exit, timeout, or unparseable
// output all report "could not detect" rather than an error, because the
// caller always has a prompt fallback.
func Whoami(ctx context.Context, sys System) (Identity, bool) {
	path, err := sys.LookPath(Binary)
	if err != nil {
		return Identity{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, whoamiTimeout)
	defer cancel()

	out, err := sys.Output(ctx, path, "whoami")
	if err != nil {
		return Identity{}, false
	}
	id := parseWhoami(string(out))
	return id, id.AccountID != "" || id.Email != ""
}

// parseWhoami scans whoami's human-oriented output for the first
// account-ID-shaped token and the first email address.
func parseWhoami(output string) Identity {
	return Identity{
		Email:     emailPattern.FindString(output),
		AccountID: accountIDPattern.FindString(output),
	}
}
