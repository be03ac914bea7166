package signer

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kbukum/openapi-go/errors"
)

const (
	// SignatureKey is the query parameter carrying the computed signature.
	SignatureKey = "Signature"
	// BodyKey is the query parameter carrying the SHA-1 of a JSON body.
	BodyKey = "_body"
	// ContentTypeJSON is the only content type whose body is bound to the signature.
	ContentTypeJSON = "application/json"
)

// Signer signs query maps with an application secret. It holds no mutable
// state and is safe for concurrent use.
type Signer struct {
	appKey    string
	appSecret string
}

// New creates a Signer for the given application credentials.
func New(appKey, appSecret string) *Signer {
	return &Signer{appKey: appKey, appSecret: appSecret}
}

// AppKey returns the application key this signer was built with.
func (s *Signer) AppKey() string { return s.appKey }

// Sign returns the signature of queries. Any existing Signature entry is
// ignored. queries is not modified.
func (s *Signer) Sign(queries map[string]string) string {
	keys := slices.Sorted(maps.Keys(queries))

	var b strings.Builder
	for _, k := range keys {
		if k == SignatureKey {
			continue
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(queries[k])
	}
	b.WriteString(s.appSecret)
	return MD5Hex(b.String())
}

// SignRequest binds body into a copy of queries and signs the result.
// The returned map is the copy, ready to be sent, with the signature set.
func (s *Signer) SignRequest(queries map[string]string, body []byte, contentType string) (map[string]string, error) {
	signed := make(map[string]string, len(queries)+2)
	maps.Copy(signed, queries)
	if err := BindBody(signed, body, contentType); err != nil {
		return nil, err
	}
	signed[SignatureKey] = s.Sign(signed)
	return signed, nil
}

// BindBody sets queries[BodyKey] to the SHA-1 of body when body is
// non-empty and contentType is exactly application/json. Other bodies are
// not bound.
func BindBody(queries map[string]string, body []byte, contentType string) error {
	if len(body) == 0 || contentType != ContentTypeJSON {
		return nil
	}
	if !utf8.Valid(body) {
		return errors.InvalidEncoding(fmt.Errorf("invalid UTF-8 in %d byte body", len(body)))
	}
	queries[BodyKey] = SHA1Hex(body)
	return nil
}
