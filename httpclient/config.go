package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/openapi-go/resilience"
)

const (
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConnsPerHost = 16
	defaultReadIdleTimeout     = 30 * time.Second
	defaultPingTimeout         = 15 * time.Second
)

// Config configures the HTTP transport.
type Config struct {
	// Timeout bounds a buffered request end to end. Defaults to 30s.
	// Streaming requests are bounded by their context only.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxIdleConnsPerHost caps pooled keep-alive connections per host.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// HTTP2 configures HTTP/2 connection health checks. Nil leaves the
	// transport's defaults in place.
	HTTP2 *HTTP2Config `yaml:"http2" mapstructure:"http2"`

	// CircuitBreaker configures circuit breaker behavior. Nil disables it.
	CircuitBreaker *resilience.CircuitBreakerConfig `yaml:"circuit_breaker" mapstructure:"circuit_breaker"`

	// RateLimiter configures client-side rate limiting. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig `yaml:"rate_limiter" mapstructure:"rate_limiter"`
}

// HTTP2Config controls HTTP/2 keep-alive pings on idle connections.
type HTTP2Config struct {
	// ReadIdleTimeout is how long a connection may be idle before a ping is sent.
	ReadIdleTimeout time.Duration `yaml:"read_idle_timeout" mapstructure:"read_idle_timeout"`
	// PingTimeout is how long to wait for a ping response before closing the connection.
	PingTimeout time.Duration `yaml:"ping_timeout" mapstructure:"ping_timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}
	if c.HTTP2 != nil {
		if c.HTTP2.ReadIdleTimeout <= 0 {
			c.HTTP2.ReadIdleTimeout = defaultReadIdleTimeout
		}
		if c.HTTP2.PingTimeout <= 0 {
			c.HTTP2.PingTimeout = defaultPingTimeout
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("httpclient: max_idle_conns_per_host must not be negative")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	if c.RateLimiter != nil && c.RateLimiter.Rate < 0 {
		return fmt.Errorf("httpclient: rate limiter rate must not be negative")
	}
	return nil
}
