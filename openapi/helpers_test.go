package openapi

import (
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/signer"
)

const (
	testAppKey    = "k1"
	testAppSecret = "s3cr3t"
	testUserID    = "user-1"
	testVersion   = "2.0"
)

var fixedTime = time.Unix(1690000000, 0)

func testConfig(apiURL string) Config {
	return Config{
		AppKey:    testAppKey,
		AppSecret: testAppSecret,
		UserID:    testUserID,
		Zone:      "az-test",
		Version:   testVersion,
		Endpoints: Endpoints{API: apiURL},
	}
}

func fixedClock() time.Time { return fixedTime }

func flatQuery(q url.Values) map[string]string {
	m := make(map[string]string, len(q))
	for k := range q {
		m[k] = q.Get(k)
	}
	return m
}

// verifySignature recomputes the signature the server would expect.
func verifySignature(r *http.Request) error {
	q := flatQuery(r.URL.Query())
	want := signer.New(testAppKey, testAppSecret).Sign(q)
	if got := q[signer.SignatureKey]; got != want {
		return fmt.Errorf("signature mismatch: got %s want %s", got, want)
	}
	return nil
}

// testEndpoint is a configurable Endpoint.
type testEndpoint[T any] struct {
	req      *httpclient.Request
	buildErr error
	decode   func(*http.Response) (T, error)
	builds   atomic.Int32
	decodes  atomic.Int32
}

func (e *testEndpoint[T]) BuildRequest() (*httpclient.Request, error) {
	e.builds.Add(1)
	if e.buildErr != nil {
		return nil, e.buildErr
	}
	return e.req.Clone(), nil
}

func (e *testEndpoint[T]) DecodeResponse(resp *http.Response) (T, error) {
	e.decodes.Add(1)
	if e.decode != nil {
		return e.decode(resp)
	}
	var zero T
	return zero, nil
}

type streamEndpoint struct {
	testEndpoint[*httpclient.StreamResponse]
}

func (*streamEndpoint) Streaming() {}

// countingDoer records calls and fails them all.
type countingDoer struct {
	calls atomic.Int32
	resp  *http.Response
	err   error
}

func (d *countingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls.Add(1)
	return d.resp, d.err
}
