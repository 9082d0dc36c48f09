package profile

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/nac-codes/wrangler-profiles/internal/messages"
)

// recordDoc is the durable TOML shape of a Record. The variant is a
// method tag plus flat credential fields; decoding validates that the
// fields are consistent with the tag.
type recordDoc struct {
	Name      string    `toml:"name"`
	Method    string    `toml:"method"`
	AccountID string    `toml:"account_id"`
	APIToken  string    `toml:"api_token,omitempty"`
	CreatedAt time.Time `toml:"created_at"`
}

// EncodeRecord serializes a record to its TOML document. It is a pure
// function of the record; EncodeRecord then DecodeRecord round-trips
// exactly.
func EncodeRecord(rec Record) ([]byte, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf(messages.RecordNameRequired)
	}
	if rec.Auth == nil || !rec.Auth.Method().valid() {
		return nil, fmt.Errorf(messages.RecordAuthRequiredFmt, rec.Name)
	}
	doc := recordDoc{
		Name:      rec.Name,
		Method:    rec.Auth.Method().String(),
		AccountID: rec.Auth.AccountID(),
		CreatedAt: rec.CreatedAt,
	}
	if cred, ok := rec.TokenCredential(); ok {
		doc.APIToken = cred.Token
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf(messages.RecordEncodeFailedFmt, rec.Name, err)
	}
	return data, nil
}

// DecodeRecord parses a TOML document into a Record. Malformed TOML and
// documents violating the variant invariants both wrap ErrCorruptRecord;
// callers report the failure per profile instead of crashing.
func DecodeRecord(data []byte) (Record, error) {
	var doc recordDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf(messages.RecordCorruptFmt, ErrCorruptRecord, err)
	}
	if doc.Name == "" {
		return Record{}, fmt.Errorf(messages.RecordCorruptFmt, ErrCorruptRecord, messages.RecordNameRequired)
	}
	method := Method(doc.Method)
	if !method.valid() {
		return Record{}, fmt.Errorf(messages.RecordCorruptFmt, ErrCorruptRecord, fmt.Sprintf(messages.RecordMethodInvalidFmt, doc.Method))
	}
	if method == MethodOAuth && doc.APIToken != "" {
		return Record{}, fmt.Errorf(messages.RecordCorruptFmt, ErrCorruptRecord, messages.RecordOAuthStrayToken)
	}

	rec := Record{Name: doc.Name, CreatedAt: doc.CreatedAt}
	switch method {
	case MethodOAuth:
		rec.Auth = OAuth{Account: doc.AccountID}
	case MethodAPIToken:
		rec.Auth = APIToken{Account: doc.AccountID, Token: doc.APIToken}
	}
	return rec, nil
}
