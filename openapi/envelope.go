package openapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/httpclient"
)

// Response is the envelope wrapped around every JSON response. Fields
// missing from the body keep their zero values.
type Response[T any] struct {
	ErrorCode    string `json:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage"`
	RequestID    string `json:"RequestID"`
	Data         *T     `json:"Data"`
}

// OK reports whether the service reported no error.
func (r *Response[T]) OK() bool { return r.ErrorCode == "" }

// Err returns an API_ERROR carrying the envelope's error code, message and
// request ID, or nil when the envelope reports no error.
func (r *Response[T]) Err() error {
	if r.OK() {
		return nil
	}
	return errors.API(r.ErrorCode, r.ErrorMessage, r.RequestID)
}

// DecodeJSON reads resp.Body into an envelope. An empty body yields a zero
// envelope; malformed JSON is a DECODE_ERROR.
func DecodeJSON[T any](resp *http.Response) (*Response[T], error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Decode(err)
	}
	out := &Response[T]{}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, errors.Decode(err)
	}
	return out, nil
}

// DecodeStream wraps resp as a stream without reading it. Streaming
// endpoints return it from DecodeResponse.
func DecodeStream(resp *http.Response) (*httpclient.StreamResponse, error) {
	return httpclient.NewStreamResponse(resp)
}
