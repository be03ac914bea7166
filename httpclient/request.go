package httpclient

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Content types used by endpoints.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
)

// Request describes an outbound HTTP request independently of any client.
// Endpoints produce one; the client adds credentials and sends it.
type Request struct {
	// Method is one of GET, POST, PATCH, PUT or DELETE.
	Method string
	// URI is the request path with path parameters already substituted.
	URI string
	// Headers are request-specific headers. They win over client defaults.
	Headers map[string]string
	// Query holds query parameters. Absent optional fields have no entry.
	Query map[string]string
	// Body is the raw request body, if any.
	Body []byte
	// ContentType is sent as the Content-Type header when set.
	ContentType string
}

// NewRequest creates a Request with empty header and query maps.
func NewRequest(method, uri string) *Request {
	return &Request{
		Method:  method,
		URI:     uri,
		Headers: make(map[string]string),
		Query:   make(map[string]string),
	}
}

// SetHeader sets a header and returns the receiver.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetQuery sets a query parameter and returns the receiver.
func (r *Request) SetQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// SetQueryPtr sets key to the formatted value of *v, or leaves the query
// untouched when v is nil.
func SetQueryPtr[T any](r *Request, key string, v *T) *Request {
	if v == nil {
		return r
	}
	return r.SetQuery(key, fmt.Sprint(*v))
}

// SetJSONBody marshals v as the body and marks the request as JSON.
func (r *Request) SetJSONBody(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("httpclient: encode body: %w", err)
	}
	r.Body = data
	r.ContentType = ContentTypeJSON
	return nil
}

// SetRawBody sets an opaque body with the given content type and returns the receiver.
func (r *Request) SetRawBody(body []byte, contentType string) *Request {
	r.Body = body
	r.ContentType = contentType
	return r
}

// Clone returns a deep copy of the request.
func (r *Request) Clone() *Request {
	c := *r
	c.Headers = maps.Clone(r.Headers)
	c.Query = maps.Clone(r.Query)
	if r.Body != nil {
		c.Body = append([]byte(nil), r.Body...)
	}
	return &c
}
