package httpclient

import (
	"io"
	"net/http"
	"regexp"
)

var filenamePattern = regexp.MustCompile(`attachment; filename="(.*?)"`)

// StreamResponse exposes a successful response body without buffering it.
// The caller must Close it.
type StreamResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// FileName is taken from Content-Disposition, or empty.
	FileName string
	// ContentType is the Content-Type header, or empty.
	ContentType string
	// ContentLength is the declared body length, or -1 when unknown.
	ContentLength int64
	// Body yields the payload once, front to back.
	Body io.ReadCloser
}

// NewStreamResponse wraps a 2xx response. Non-2xx responses are closed and
// reported as RequestFailed errors.
func NewStreamResponse(resp *http.Response) (*StreamResponse, error) {
	if err := CheckStatus(resp); err != nil {
		return nil, err
	}
	return &StreamResponse{
		StatusCode:    resp.StatusCode,
		FileName:      ParseFileName(resp.Header.Get("Content-Disposition")),
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// ParseFileName extracts the quoted filename from an attachment
// Content-Disposition header value.
func ParseFileName(disposition string) string {
	m := filenamePattern.FindStringSubmatch(disposition)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Read reads from the body.
func (r *StreamResponse) Read(p []byte) (int, error) {
	return r.Body.Read(p)
}

// Close releases the connection held by the stream.
func (r *StreamResponse) Close() error {
	if r.Body != nil {
		return r.Body.Close()
	}
	return nil
}
