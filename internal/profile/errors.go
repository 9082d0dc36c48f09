package profile

import "errors"

// ErrNotFound reports a profile name with neither a current-format record
// nor a legacy env file behind it. Callers can use errors.Is to map it to
// a user diagnostic.
var ErrNotFound = errors.New("profile not found")

// ErrExists reports an add against a name that already has a profile.
var ErrExists = errors.New("profile already exists")

// ErrCorruptRecord wraps decode failures of a current-format record. The
// listing path swallows it per entry so one corrupt profile does not hide
// the rest; direct loads surface it.
var ErrCorruptRecord = errors.New("profile record is corrupt")
