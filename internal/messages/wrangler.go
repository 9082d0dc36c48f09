package messages

// Messages for the wrangler collaborator boundary.
const (
	// WranglerNotFoundFmt reports a missing wrangler binary.
	WranglerNotFoundFmt = "%w: wrangler not found on PATH: %v"
	// WranglerLoginFailedFmt wraps a non-zero 'wrangler login' exit.
	WranglerLoginFailedFmt = "%w: wrangler login: %v"
	// WranglerExitFmt wraps a non-zero wrangler exit during invocation.
	WranglerExitFmt = "wrangler: %w"

	// PathsResolveHomeFailedFmt formats home directory resolution failures.
	PathsResolveHomeFailedFmt = "resolve home directory: %w"
)
