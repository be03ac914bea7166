package openapitest

import (
	"context"
	"fmt"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/openapi-go/component"
	"github.com/kbukum/openapi-go/logger"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Credentials the server accepts unless overridden.
const (
	AppKey    = "test-app-key"
	AppSecret = "test-app-secret"
	UserID    = "test-user"
	Version   = "1.0"
	Zone      = "az-test"
)

// Option configures a Server.
type Option func(*Server)

// WithCredentials sets the app key and secret the server verifies against.
func WithCredentials(appKey, secret string) Option {
	return func(s *Server) {
		s.appKey = appKey
		s.secret = secret
	}
}

// WithoutSignatureCheck accepts unsigned requests.
func WithoutSignatureCheck() Option {
	return func(s *Server) { s.skipVerify = true }
}

// WithLogger sets the logger used for recovered panics.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// Server is a fake OpenAPI service backed by httptest.Server.
type Server struct {
	engine     *gin.Engine
	ts         *httptest.Server
	log        *logger.Logger
	appKey     string
	secret     string
	skipVerify bool

	mu       sync.RWMutex
	requests []Request
	started  bool
}

var _ component.Component = (*Server)(nil)
var _ testutil.TestComponent = (*Server)(nil)

// NewServer creates a server that is not yet listening.
func NewServer(opts ...Option) *Server {
	s := &Server{
		appKey: AppKey,
		secret: AppSecret,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("openapitest")

	s.engine = gin.New()
	// Route on the escaped path so encoded slashes stay inside one segment.
	s.engine.UseRawPath = true
	s.engine.Use(s.recovery(), requestID(), s.record())
	if !s.skipVerify {
		s.engine.Use(s.verify())
	}
	return s
}

// Start creates and starts a server that is stopped when t ends.
func Start(t testing.TB, opts ...Option) *Server {
	t.Helper()
	s := NewServer(opts...)
	testutil.T(t).Setup(s)
	return s
}

// Engine returns the Gin engine for registering custom routes.
func (s *Server) Engine() *gin.Engine { return s.engine }

// URL returns the server's base URL, or "" before Start.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ts == nil {
		return ""
	}
	return s.ts.URL
}

// Config returns a client configuration that routes every endpoint type
// to this server.
func (s *Server) Config() openapi.Config {
	u := s.URL()
	return openapi.Config{
		AppKey:    s.appKey,
		AppSecret: s.secret,
		UserID:    UserID,
		Zone:      Zone,
		Version:   Version,
		Endpoints: openapi.Endpoints{API: u, Cloud: u, HPC: u, Sync: u},
	}
}

// Client returns a client for this server that is closed when t ends.
func (s *Server) Client(t testing.TB, opts ...openapi.Option) *openapi.Client {
	t.Helper()
	c, err := openapi.New(s.Config(), opts...)
	if err != nil {
		t.Fatalf("openapitest: create client: %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

// Requests returns the requests received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.requests)
}

// LastRequest returns the most recent request, or false when none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// --- component.Component ---

func (s *Server) Name() string { return "openapitest" }

func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("openapitest: server already started")
	}
	s.ts = httptest.NewServer(s.engine)
	s.started = true
	return nil
}

func (s *Server) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.ts.Close()
	s.started = false
	return nil
}

func (s *Server) Health(_ context.Context) component.Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return component.Health{Name: s.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: s.Name(), Status: component.StatusHealthy}
}

// --- testutil.TestComponent ---

// Reset forgets recorded requests. Routes stay registered.
func (s *Server) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	return nil
}

// Snapshot captures the recorded requests.
func (s *Server) Snapshot(_ context.Context) (any, error) {
	return s.Requests(), nil
}

// Restore replaces the recorded requests with a snapshot.
func (s *Server) Restore(_ context.Context, snapshot any) error {
	reqs, ok := snapshot.([]Request)
	if !ok {
		return fmt.Errorf("openapitest: unexpected snapshot type %T", snapshot)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = slices.Clone(reqs)
	return nil
}

func (s *Server) addRequest(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}
