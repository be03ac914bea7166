package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbukum/openapi-go/errors"
)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPatch:  true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// IsAllowedMethod reports whether method is one the service accepts.
func IsAllowedMethod(method string) bool {
	return allowedMethods[method]
}

// Build constructs an *http.Request for req against baseURL. The request is
// bound to ctx. Query parameters are encoded in sorted key order.
func Build(ctx context.Context, baseURL string, req *Request) (*http.Request, error) {
	if !IsAllowedMethod(req.Method) {
		return nil, errors.UnsupportedMethod(req.Method)
	}
	if baseURL == "" {
		return nil, errors.Config("base URL is empty")
	}

	target := joinURL(baseURL, req.URI)
	if len(req.Query) > 0 {
		q := make(url.Values, len(req.Query))
		for k, v := range req.Query {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.InvalidRequest("create request: " + err.Error()).WithCause(err)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	return httpReq, nil
}

func joinURL(base, uri string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(uri, "/")
}
