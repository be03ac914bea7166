package openapi

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/logger"
	"github.com/kbukum/openapi-go/observability"
	"github.com/kbukum/openapi-go/signer"
	"github.com/kbukum/openapi-go/util"
)

// Default headers and query parameters added to every request. Header
// names are in Go's canonical form; the service documents them in lower
// case (x-ys-user-id), which is the same header since names are
// case-insensitive.
const (
	HeaderUserID    = "X-Ys-User-Id"
	HeaderVersion   = "X-Ys-Version"
	HeaderUserAgent = "User-Agent"

	QueryAppKey    = "AppKey"
	QueryTimestamp = "Timestamp"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	log            *logger.Logger
	clock          func() time.Time
	metrics        *observability.Metrics
	tracerProvider trace.TracerProvider
	transportOpts  []httpclient.Option
}

// WithLogger sets the logger. Requests are logged at debug level and
// failures at warn level. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock sets the time source for the Timestamp query parameter.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithDoer replaces the HTTP client that executes requests.
func WithDoer(d httpclient.Doer) Option {
	return func(o *options) { o.transportOpts = append(o.transportOpts, httpclient.WithDoer(d)) }
}

// WithTransportOptions passes options through to the HTTP transport, for
// example a circuit breaker shared between clients.
func WithTransportOptions(opts ...httpclient.Option) Option {
	return func(o *options) { o.transportOpts = append(o.transportOpts, opts...) }
}

// WithMetrics records request counts and latencies on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider sets the provider for request spans. The default is
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// Client sends signed requests to the OpenAPI service. It is immutable
// after New and safe for concurrent use.
type Client struct {
	cfg          Config
	endpointType EndpointType

	signer    *signer.Signer
	transport *httpclient.Transport
	log       *logger.Logger
	clock     func() time.Time
	tracer    trace.Tracer
	metrics   *observability.Metrics
}

// New validates cfg and creates a Client targeting the API endpoint.
// It performs no I/O.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}

	transport, err := httpclient.New(cfg.HTTP, o.transportOpts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:          cfg,
		endpointType: EndpointAPI,
		signer:       signer.New(cfg.AppKey, cfg.AppSecret),
		transport:    transport,
		log:          o.log.WithComponent("openapi"),
		clock:        o.clock,
		tracer:       observability.Tracer(o.tracerProvider),
		metrics:      o.metrics,
	}

	c.log.Debug("client created", logger.Fields(
		logger.FieldAppKey, util.MaskSecret(cfg.AppKey, 4),
		logger.FieldUserID, cfg.UserID,
		logger.FieldEndpoint, cfg.Endpoints.API,
	))
	return c, nil
}

// WithEndpointType returns a copy of the client that sends to the base URL
// of t. The copy shares the transport; c is unchanged.
func (c *Client) WithEndpointType(t EndpointType) *Client {
	cp := *c
	cp.endpointType = t
	return &cp
}

// EndpointType returns the endpoint type the client sends to.
func (c *Client) EndpointType() EndpointType { return c.endpointType }

// BaseURL returns the base URL of the active endpoint type.
func (c *Client) BaseURL() (string, error) { return c.cfg.BaseURL(c.endpointType) }

// Config returns a copy of the client configuration.
func (c *Client) Config() Config { return c.cfg }

// IsAvailable reports false while the transport's circuit breaker is open.
func (c *Client) IsAvailable(ctx context.Context) bool { return c.transport.IsAvailable(ctx) }

// Close releases idle connections. The client remains usable.
func (c *Client) Close(ctx context.Context) error { return c.transport.Close(ctx) }
