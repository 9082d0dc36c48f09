package wrangler

import (
	"sort"
	"strings"

	"github.com/nac-codes/wrangler-profiles/internal/profile"
)

// ProfileEnv returns the environment variables a profile contributes to a
// wrangler invocation: the account ID always, the API token only for the
// token variant. OAuth profiles contribute no token; wrangler reads their
// session from the config slot installed at activation. Pure function,
// no side effects.
func ProfileEnv(rec profile.Record) map[string]string {
	env := map[string]string{
		profile.EnvAccountID: rec.Auth.AccountID(),
	}
	if cred, ok := rec.TokenCredential(); ok {
		env[profile.EnvAPIToken] = cred.Token
	}
	return env
}

// OverlayEnv sets each override onto a copy-on-write env slice. Keys are
// applied in sorted order so the result is deterministic.
func OverlayEnv(base []string, overrides map[string]string) []string {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		base = SetEnv(base, key, overrides[key])
	}
	return base
}

// GetEnv returns the value for key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):], true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key string, value string) []string {
	entry := key + "=" + value
	prefix := key + "="
	for i, existing := range env {
		if strings.HasPrefix(existing, prefix) {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}

// UnsetEnv removes all entries for key from an env slice.
func UnsetEnv(env []string, key string) []string {
	prefix := key + "="
	result := make([]string, 0, len(env))
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			result = append(result, entry)
		}
	}
	return result
}
