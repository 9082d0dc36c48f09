// Package profile owns the on-disk profile store: the per-profile record
// and its TOML codec, the legacy env-file migration path, and the pointer
// naming the active profile. A profile's multi-file footprint (record,
// optional OAuth blob, optional legacy env file) is exposed as one logical
// record; callers never reason about the individual files.
package profile

import "time"

// Method identifies how a profile authenticates against Cloudflare.
type Method string

const (
	// MethodOAuth marks a profile backed by a browser-issued wrangler
	// OAuth session stored as an opaque blob.
	MethodOAuth Method = "oauth"
	// MethodAPIToken marks a profile backed by a long-lived API token.
	MethodAPIToken Method = "api_token"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) valid() bool {
	return m == MethodOAuth || m == MethodAPIToken
}

// Auth is the credential variant carried by a record: exactly one of
// OAuth or APIToken. The interface is sealed so no third variant (or a
// record mixing both credential forms) can be constructed.
type Auth interface {
	Method() Method
	AccountID() string

	sealedAuth()
}

// OAuth is the browser-login variant. The session material itself lives
// in the profile's opaque blob file, not on the record.
type OAuth struct {
	Account string
}

// Method returns MethodOAuth.
func (OAuth) Method() Method { return MethodOAuth }

// AccountID returns the Cloudflare account ID, possibly empty when
// detection was skipped.
func (a OAuth) AccountID() string { return a.Account }

func (OAuth) sealedAuth() {}

// APIToken is the long-lived token variant.
type APIToken struct {
	Account string
	Token   string
}

// Method returns MethodAPIToken.
func (APIToken) Method() Method { return MethodAPIToken }

// AccountID returns the Cloudflare account ID.
func (a APIToken) AccountID() string { return a.Account }

func (APIToken) sealedAuth() {}

// Record is one named credential profile. Name doubles as the on-disk
// key and is immutable after creation, as is the variant tag: switching
// auth method means removing and re-adding the profile.
type Record struct {
	Name      string
	CreatedAt time.Time
	Auth      Auth
}

// NewOAuthRecord builds an OAuth-variant record created at now.
func NewOAuthRecord(name string, account string, now time.Time) Record {
	return Record{Name: name, CreatedAt: now, Auth: OAuth{Account: account}}
}

// NewAPITokenRecord builds an API-token-variant record created at now.
func NewAPITokenRecord(name string, account string, token string, now time.Time) Record {
	return Record{Name: name, CreatedAt: now, Auth: APIToken{Account: account, Token: token}}
}

// TokenCredential returns the API token credential when the record is the
// token variant.
func (r Record) TokenCredential() (APIToken, bool) {
	cred, ok := r.Auth.(APIToken)
	return cred, ok
}
