package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "wp"
	// RootShort is the short description for the root command.
	RootShort = "Cloudflare account profiles for Wrangler"
	RootLong  = "wp keeps several Cloudflare credential profiles on one machine and selects one as active for subsequent wrangler invocations."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List stored profiles"
	ListEmpty = "No profiles stored. Run 'wp add <name>' to create one."
	// ListEntryFmt formats one listing row: marker, name, method,
	// account, obfuscated credential.
	ListEntryFmt       = "%s %-20s %-10s %-34s %s\n"
	ListCorruptWarnFmt = "Warning: skipping profile %s: %v\n"

	// AddUse is the add command usage.
	AddUse   = "add <name>"
	AddShort = "Add a profile (OAuth browser login or API token)"
	AddLong  = "Add a named credential profile. With --oauth, wrangler's browser login runs and the resulting session is stored for this profile. With --api-token, the account ID and token are read from flags or prompts."

	AddFlagOAuth     = "Create an OAuth profile via 'wrangler login'"
	AddFlagAPIToken  = "Create an API token profile"
	AddFlagAccountID = "Cloudflare account ID (prompted for when omitted)"
	AddFlagToken     = "Cloudflare API token (prompted for when omitted)"

	AddMethodPromptTitle    = "Authentication method"
	AddMethodOptionOAuth    = "OAuth browser login"
	AddMethodOptionAPIToken = "API token"
	AddAccountPromptTitle   = "Cloudflare account ID"
	AddAccountPlaceholder   = "32-character account ID"
	AddTokenPromptTitle     = "Cloudflare API token"

	AddRequiresTerminal   = "adding a profile requires an interactive terminal when flags leave fields unset"
	AddBothMethodsFlagged = "--oauth and --api-token are mutually exclusive"
	AddTokenFlagWithOAuth = "--token only applies to API token profiles"
	AddDetectedAccountFmt = "Detected account %s\n"
	AddNoAccountDetected  = "Could not detect an account ID from 'wrangler whoami'; storing the profile without one."
	AddCreatedFmt         = "Added profile %s (%s)\n"
	AddActivateHintFmt    = "Run 'wp use %s' to make it active.\n"

	// UseUse is the use command usage.
	UseUse        = "use <name>"
	UseShort      = "Switch the active profile"
	UseSwitchFmt  = "Now using profile %s (%s)\n"
	UseOAuthNote  = "Installed the stored OAuth session for wrangler."
	UseTokenNote  = "Credentials are injected when wrangler runs via 'wp run'."
	UseSourceHint = "Or export them in this shell: source \"$(wp env-path)\""

	// CurrentUse is the current command name.
	CurrentUse            = "current"
	CurrentShort          = "Show the active profile"
	CurrentFmt            = "%s (%s)\n"
	CurrentNoProfile      = "no active profile; run 'wp use <name>' to select one"
	CurrentProfileGoneFmt = "active profile %s no longer exists"

	// EnvPathUse is the env-path command name.
	EnvPathUse   = "env-path"
	EnvPathShort = "Print the active profile's env file path"
	EnvPathLong  = "Print the path of the active profile's shell-sourceable env file, e.g. source \"$(wp env-path)\"."

	// LoginUse is the login command usage.
	LoginUse         = "login [name]"
	LoginShort       = "Re-authenticate an OAuth profile in the browser"
	LoginDoneFmt     = "Refreshed OAuth session for profile %s\n"
	LoginNotOAuthFmt = "profile %s uses an API token; only OAuth profiles can re-authenticate"

	// RunUse is the run command usage.
	RunUse   = "run [flags] [-- wrangler args]"
	RunShort = "Run wrangler with the active profile's credentials"
	RunLong  = "Run wrangler with the active (or named) profile's credentials overlaid onto the environment. Arguments after -- are passed to wrangler unchanged; wrangler's exit code becomes wp's exit code."

	RunFlagProfile = "Profile to run with (defaults to the active profile)"
	RunFlagEnv     = "Wrangler environment name appended as --env"

	// RemoveUse is the remove command usage.
	RemoveUse   = "remove <name>"
	RemoveShort = "Remove a profile and its stored credentials"

	RemoveFlagForce        = "Remove without confirmation"
	RemoveConfirmFmt       = "Remove profile %s and its stored credentials?"
	RemoveRequiresTerminal = "remove prompts require an interactive terminal; re-run with --force"
	RemoveAborted          = "aborted"
	RemoveDoneFmt          = "Removed profile %s\n"

	PromptEmptyInputFmt     = "%s must not be empty"
	PromptRequiresTerminal  = "this prompt requires an interactive terminal"
)
