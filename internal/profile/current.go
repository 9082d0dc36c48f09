package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nac-codes/wrangler-profiles/internal/fsutil"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

// Current returns the active profile name. Each CLI invocation is a fresh
// process, so the pointer is always re-read from disk, never cached. An
// absent or empty pointer file means no active profile.
func (s *Store) Current() (string, bool, error) {
	data, err := os.ReadFile(s.currentPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf(messages.CurrentReadFailedFmt, s.currentPath(), err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}

// SetCurrent makes name the active profile, implicitly deactivating any
// previous one. Callers sequence this after activation side effects so a
// failed activation leaves the previous pointer untouched.
func (s *Store) SetCurrent(name string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(s.currentPath(), []byte(name+"\n"), filePerm); err != nil {
		return fmt.Errorf(messages.CurrentWriteFailedFmt, s.currentPath(), err)
	}
	return nil
}

// ClearCurrent removes the active pointer. Clearing an absent pointer is
// not an error.
func (s *Store) ClearCurrent() error {
	if err := os.Remove(s.currentPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.CurrentClearFailedFmt, s.currentPath(), err)
	}
	return nil
}
