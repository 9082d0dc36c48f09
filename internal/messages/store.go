package messages

// Profile store and activation messages.
const (
	// StoreReadDirFailedFmt formats storage directory read failures.
	StoreReadDirFailedFmt     = "read profile directory %s: %w"
	StoreCreateDirFailedFmt   = "create profile directory %s: %w"
	StoreReadRecordFailedFmt  = "read profile record %s: %w"
	StoreWriteRecordFailedFmt = "write profile record %s: %w"
	StoreDecodeRecordFmt      = "profile record %s: %w"
	StoreRemoveFileFailedFmt  = "remove %s: %w"
	StoreStatFailedFmt        = "stat %s: %w"

	// RecordCorruptFmt wraps ErrCorruptRecord around the decode failure.
	RecordCorruptFmt         = "%w: %v"
	RecordEncodeFailedFmt    = "encode profile record %s: %w"
	RecordNameRequired       = "record name is required"
	RecordAuthRequiredFmt    = "record %s has no valid auth variant"
	RecordMethodInvalidFmt   = "unknown auth method %q"
	RecordOAuthStrayToken    = "oauth record must not carry an api token"
	RecordProfileNotFoundFmt = "%w: %s"
	RecordProfileExistsFmt   = "%w: %s"

	// LegacyReadFailedFmt formats legacy env file read failures.
	LegacyReadFailedFmt  = "read legacy env file %s: %w"
	LegacyWriteFailedFmt = "write env file %s: %w"

	// CurrentReadFailedFmt formats active-pointer read failures.
	CurrentReadFailedFmt  = "read active profile pointer %s: %w"
	CurrentWriteFailedFmt = "write active profile pointer %s: %w"
	CurrentClearFailedFmt = "clear active profile pointer %s: %w"

	// ActivateMissingBlobFmt reports a missing OAuth credential blob.
	ActivateMissingBlobFmt    = "%w: profile %s has no stored OAuth session; run 'wp login %s'"
	ActivateReadBlobFailedFmt = "read stored OAuth session %s: %w"
	ActivateInstallFailedFmt  = "install OAuth session into %s: %w"
	ActivateCaptureFailedFmt  = "store OAuth session for profile %s: %w"
	ActivateSlotMissingFmt    = "%w: wrangler left no credentials at %s"
)
