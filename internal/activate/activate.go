// Package activate performs the state transition that makes a profile
// active. OAuth profiles install their stored session blob into
// wrangler's config slot; token profiles change nothing outside the
// store, because their credentials are materialized into the environment
// only when wrangler is invoked. In both cases the active pointer is
// written last, after every side effect has succeeded, so a failed
// activation never leaves the pointer naming a half-activated profile.
package activate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nac-codes/wrangler-profiles/internal/fsutil"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
	"github.com/nac-codes/wrangler-profiles/internal/profile"
)

// ErrMissingCredential reports an OAuth profile whose session blob is
// absent, either never captured or deleted out from under the store.
var ErrMissingCredential = errors.New("missing credential")

// System abstracts the filesystem operations activation needs.
type System interface {
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to path atomically.
func (RealSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(path, data, perm)
}

// Use activates the named profile and returns its record. Activating one
// profile implicitly deactivates any other by overwriting the pointer;
// there is no rollback of the previous profile's slot contents.
func Use(sys System, store *profile.Store, slot string, name string) (profile.Record, error) {
	rec, err := store.Load(name)
	if err != nil {
		return profile.Record{}, err
	}

	if rec.Auth.Method() == profile.MethodOAuth {
		if err := installBlob(sys, store, slot, name); err != nil {
			return profile.Record{}, err
		}
	}

	if err := store.SetCurrent(name); err != nil {
		return profile.Record{}, err
	}
	return rec, nil
}

// installBlob copies the stored session verbatim into wrangler's config
// slot, creating intermediate directories as needed. The per-profile copy
// stays owned by the store; wrangler owns the slot from here on.
func installBlob(sys System, store *profile.Store, slot string, name string) error {
	blob, err := sys.ReadFile(store.BlobPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.ActivateMissingBlobFmt, ErrMissingCredential, name, name)
	}
	if err != nil {
		return fmt.Errorf(messages.ActivateReadBlobFailedFmt, store.BlobPath(name), err)
	}

	if err := sys.MkdirAll(filepath.Dir(slot), 0o700); err != nil {
		return fmt.Errorf(messages.ActivateInstallFailedFmt, slot, err)
	}
	if err := sys.WriteFileAtomic(slot, blob, 0o600); err != nil {
		return fmt.Errorf(messages.ActivateInstallFailedFmt, slot, err)
	}
	return nil
}

// CaptureOAuth copies the session wrangler just wrote into its config
// slot back into per-profile storage, verbatim. An absent slot means the
// login collaborator did not do its part.
func CaptureOAuth(sys System, store *profile.Store, slot string, name string) error {
	blob, err := sys.ReadFile(slot)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.ActivateSlotMissingFmt, ErrMissingCredential, slot)
	}
	if err != nil {
		return fmt.Errorf(messages.ActivateCaptureFailedFmt, name, err)
	}
	if err := sys.MkdirAll(store.Dir(), 0o700); err != nil {
		return fmt.Errorf(messages.ActivateCaptureFailedFmt, name, err)
	}
	if err := sys.WriteFileAtomic(store.BlobPath(name), blob, 0o600); err != nil {
		return fmt.Errorf(messages.ActivateCaptureFailedFmt, name, err)
	}
	return nil
}
