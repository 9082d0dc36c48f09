package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nac-codes/wrangler-profiles/internal/fsutil"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

const (
	recordSuffix = ".toml"
	blobSuffix   = ".oauth.toml"
	legacySuffix = ".env"
	currentFile  = ".current"

	dirPerm  = 0o700
	filePerm = 0o600
)

// Store is the profile store over a single directory. Operations are not
// atomic across the multiple files belonging to one profile; this is a
// single-user, single-process tool and concurrent mutators are out of
// scope.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// RecordPath returns the current-format record path for name.
func (s *Store) RecordPath(name string) string {
	return filepath.Join(s.dir, name+recordSuffix)
}

// BlobPath returns the opaque OAuth session blob path for name.
func (s *Store) BlobPath(name string) string {
	return filepath.Join(s.dir, name+blobSuffix)
}

// LegacyEnvPath returns the shell-sourceable legacy env file path for name.
func (s *Store) LegacyEnvPath(name string) string {
	return filepath.Join(s.dir, name+legacySuffix)
}

func (s *Store) currentPath() string {
	return filepath.Join(s.dir, currentFile)
}

// List returns the union of current-format and legacy profile names,
// deduplicated and sorted lexicographically. A missing or empty storage
// directory yields an empty list, never an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.StoreReadDirFailedFmt, s.dir, err)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch {
		case strings.HasSuffix(name, blobSuffix):
			// Blob files only accompany a record; never a name source.
		case strings.HasSuffix(name, recordSuffix):
			seen[strings.TrimSuffix(name, recordSuffix)] = true
		case strings.HasSuffix(name, legacySuffix):
			seen[strings.TrimSuffix(name, legacySuffix)] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether name has a current-format record or a legacy env
// file.
func (s *Store) Exists(name string) (bool, error) {
	for _, path := range []string{s.RecordPath(name), s.LegacyEnvPath(name)} {
		if _, err := os.Stat(path); err == nil {
			return true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf(messages.StoreStatFailedFmt, path, err)
		}
	}
	return false, nil
}

// Load returns the record for name, preferring the current format and
// falling back to legacy migration. A name with neither file wraps
// ErrNotFound; a corrupt record wraps ErrCorruptRecord.
func (s *Store) Load(name string) (Record, error) {
	path := s.RecordPath(name)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		rec, err := DecodeRecord(data)
		if err != nil {
			return Record{}, fmt.Errorf(messages.StoreDecodeRecordFmt, path, err)
		}
		return rec, nil
	case errors.Is(err, fs.ErrNotExist):
		// fall through to legacy migration
	default:
		return Record{}, fmt.Errorf(messages.StoreReadRecordFailedFmt, path, err)
	}

	legacy, err := os.Stat(s.LegacyEnvPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, fmt.Errorf(messages.RecordProfileNotFoundFmt, ErrNotFound, name)
	}
	if err != nil {
		return Record{}, fmt.Errorf(messages.StoreStatFailedFmt, s.LegacyEnvPath(name), err)
	}
	if legacy.IsDir() {
		return Record{}, fmt.Errorf(messages.RecordProfileNotFoundFmt, ErrNotFound, name)
	}
	return s.migrateLegacy(name)
}

// Save writes the current-format record, unconditionally replacing any
// existing record of the same name. Token-variant records also refresh
// the legacy env artifact for shell-sourcing consumers; the record stays
// authoritative and the env file is derived, never read back.
func (s *Store) Save(rec Record) error {
	if err := s.writeRecord(rec); err != nil {
		return err
	}
	if cred, ok := rec.TokenCredential(); ok {
		return s.syncLegacyEnv(rec.Name, cred)
	}
	return nil
}

// writeRecord encodes and persists just the record file.
func (s *Store) writeRecord(rec Record) error {
	data, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	path := s.RecordPath(rec.Name)
	if err := fsutil.WriteFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf(messages.StoreWriteRecordFailedFmt, path, err)
	}
	return nil
}

// Remove deletes every file belonging to name that exists: record, OAuth
// blob, and legacy env file. It also clears the active pointer when it
// names this profile, so the pointer never dangles.
func (s *Store) Remove(name string) error {
	for _, path := range []string{s.RecordPath(name), s.BlobPath(name), s.LegacyEnvPath(name)} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.StoreRemoveFileFailedFmt, path, err)
		}
	}
	current, ok, err := s.Current()
	if err != nil {
		return err
	}
	if ok && current == name {
		return s.ClearCurrent()
	}
	return nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf(messages.StoreCreateDirFailedFmt, s.dir, err)
	}
	return nil
}
