package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/nac-codes/wrangler-profiles/internal/envfile"
	"github.com/nac-codes/wrangler-profiles/internal/fsutil"
	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

// Env var names written to legacy env files and overlaid onto wrangler's
// environment at invocation time.
const (
	EnvAccountID = "CLOUDFLARE_ACCOUNT_ID"
	EnvAPIToken  = "CLOUDFLARE_API_TOKEN"
)

// migrateLegacy converts a legacy env file into a current-format record.
// Legacy files predate OAuth support, so the result is always the token
// variant. The original creation time is not recoverable and is not
// invented; CreatedAt is the migration time, stable on subsequent loads
// because the written record is preferred from then on. The legacy file
// is left untouched for older consumers.
func (s *Store) migrateLegacy(name string) (Record, error) {
	data, err := os.ReadFile(s.LegacyEnvPath(name))
	if err != nil {
		return Record{}, fmt.Errorf(messages.LegacyReadFailedFmt, s.LegacyEnvPath(name), err)
	}
	env := envfile.Parse(string(data))
	rec := NewAPITokenRecord(name, env[EnvAccountID], env[EnvAPIToken], time.Now().UTC())

	// Best-effort persistence: a failed write must not block the lookup,
	// it only means migration runs again next time.
	_ = s.writeRecord(rec)

	return rec, nil
}

// syncLegacyEnv patches the legacy env artifact with the token profile's
// credentials, preserving comments and unrelated keys a user may have
// added for shell sourcing.
func (s *Store) syncLegacyEnv(name string, cred APIToken) error {
	path := s.LegacyEnvPath(name)
	var content string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = string(data)
	case errors.Is(err, fs.ErrNotExist):
		// starting fresh
	default:
		return fmt.Errorf(messages.LegacyReadFailedFmt, path, err)
	}

	patched := envfile.Patch(content, map[string]string{
		EnvAccountID: cred.Account,
		EnvAPIToken:  cred.Token,
	})
	if patched == content {
		return nil
	}
	if err := fsutil.WriteFileAtomic(path, []byte(patched), filePerm); err != nil {
		return fmt.Errorf(messages.LegacyWriteFailedFmt, path, err)
	}
	return nil
}
