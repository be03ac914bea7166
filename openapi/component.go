package openapi

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/openapi-go/component"
	"github.com/kbukum/openapi-go/errors"
)

// Component manages a Client's lifecycle in a component.Registry. Start
// creates the client, Stop releases its idle connections.
type Component struct {
	cfg  Config
	opts []Option

	mu     sync.RWMutex
	client *Client
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a component that builds a Client from cfg on Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{cfg: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string { return ServiceName }

// Start creates the client. Configuration errors surface here.
func (c *Component) Start(_ context.Context) error {
	client, err := New(c.cfg, c.opts...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.client = client
	c.mu.Unlock()
	return nil
}

// Stop releases the client's idle connections.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Close(ctx)
}

// Health reports unhealthy before Start and degraded while the circuit
// breaker is open.
func (c *Component) Health(ctx context.Context) component.Health {
	h := component.Health{Name: c.Name(), Status: component.StatusHealthy}
	client := c.currentClient()
	switch {
	case client == nil:
		h.Status = component.StatusUnhealthy
		h.Message = "client not started"
	case !client.IsAvailable(ctx):
		h.Status = component.StatusDegraded
		h.Message = "circuit breaker open"
	}
	return h
}

// Describe summarizes the configured endpoints.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "OpenAPI client",
		Type:    "openapi-client",
		Details: fmt.Sprintf("%s zone=%s user=%s", c.cfg.Endpoints.API, c.cfg.Zone, c.cfg.UserID),
	}
}

// Client returns the started client.
func (c *Component) Client() (*Client, error) {
	client := c.currentClient()
	if client == nil {
		return nil, errors.Config("openapi component is not started")
	}
	return client, nil
}

func (c *Component) currentClient() *Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}
