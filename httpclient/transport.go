package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/resilience"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Transport.
type Option func(*Transport)

// WithDoer replaces the underlying HTTP client for both buffered and
// streaming requests.
func WithDoer(d Doer) Option {
	return func(t *Transport) {
		t.doer = d
		t.streamDoer = d
	}
}

// WithCircuitBreaker installs a pre-built circuit breaker, so several
// transports can share one.
func WithCircuitBreaker(cb *resilience.CircuitBreaker) Option {
	return func(t *Transport) { t.cb = cb }
}

// WithRateLimiter installs a pre-built rate limiter.
func WithRateLimiter(rl *resilience.RateLimiter) Option {
	return func(t *Transport) { t.rl = rl }
}

// Transport executes built requests. It is safe for concurrent use and
// never retries.
type Transport struct {
	httpClient *http.Client
	doer       Doer
	streamDoer Doer
	config     Config
	cb         *resilience.CircuitBreaker
	rl         *resilience.RateLimiter
}

// New creates a Transport with the given configuration.
func New(cfg Config, opts ...Option) (*Transport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Config(err.Error()).WithCause(err)
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, errors.Config(fmt.Sprintf("tls: %v", err)).WithCause(err)
		}
		if tlsCfg != nil {
			base.TLSClientConfig = tlsCfg
		}
	}

	if cfg.HTTP2 != nil {
		h2, err := http2.ConfigureTransports(base)
		if err != nil {
			return nil, errors.Config(fmt.Sprintf("http2: %v", err)).WithCause(err)
		}
		h2.ReadIdleTimeout = cfg.HTTP2.ReadIdleTimeout
		h2.PingTimeout = cfg.HTTP2.PingTimeout
	}

	t := &Transport{
		httpClient: &http.Client{Transport: base, Timeout: cfg.Timeout},
		config:     cfg,
	}
	t.doer = t.httpClient
	// Streams outlive the buffered timeout; their context bounds them.
	t.streamDoer = &http.Client{Transport: base}

	if cfg.CircuitBreaker != nil {
		t.cb = resilience.NewCircuitBreaker(*cfg.CircuitBreaker)
	}
	if cfg.RateLimiter != nil {
		t.rl = resilience.NewRateLimiter(*cfg.RateLimiter)
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Do executes req and returns the response for any status. The caller owns
// the body. Failures to obtain a response are classified as Cancelled,
// Timeout or Transport errors.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	return t.execute(t.doer, req)
}

// DoStream is like Do but is not subject to the buffered request timeout,
// so the body can be read for as long as the request context allows.
func (t *Transport) DoStream(req *http.Request) (*http.Response, error) {
	return t.execute(t.streamDoer, req)
}

func (t *Transport) execute(d Doer, req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.rl != nil {
		if err := t.rl.Wait(ctx); err != nil {
			return nil, classifyTransportError(ctx, err)
		}
	}

	if t.cb == nil {
		return t.roundTrip(ctx, d, req)
	}
	if err := t.cb.Allow(); err != nil {
		return nil, errors.CircuitOpen(err)
	}
	resp, err := t.roundTrip(ctx, d, req)
	switch {
	case errors.IsCancelled(err):
		t.cb.Ignore()
	case err != nil:
		t.cb.Record(false)
	default:
		// 5xx responses are returned to the caller but count against the service.
		t.cb.Record(resp.StatusCode < http.StatusInternalServerError)
	}
	return resp, err
}

func (t *Transport) roundTrip(ctx context.Context, d Doer, req *http.Request) (*http.Response, error) {
	resp, err := d.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	return resp, nil
}

// IsAvailable reports false while the circuit breaker is open.
func (t *Transport) IsAvailable(_ context.Context) bool {
	if t.cb != nil {
		return t.cb.State() != resilience.StateOpen
	}
	return true
}

// Close releases idle connections held by the transport.
func (t *Transport) Close(_ context.Context) error {
	t.httpClient.CloseIdleConnections()
	return nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *Transport) Unwrap() *http.Client {
	return t.httpClient
}

// GetConfig returns the transport's configuration.
func (t *Transport) GetConfig() Config {
	return t.config
}
