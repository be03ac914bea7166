package resilience

import (
	"errors"
	"sync"
	"time"
)

const (
	defaultMaxFailures = 5
	defaultCooldown    = 30 * time.Second
)

// ErrCircuitOpen is returned by Allow while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker's position.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the cooldown has passed.
	StateOpen
	// StateHalfOpen lets a single trial call through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures a CircuitBreaker. Zero fields take defaults.
type CircuitBreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the
	// circuit. Defaults to 5.
	MaxFailures int `yaml:"max_failures" mapstructure:"max_failures"`
	// Cooldown is how long an open circuit waits before admitting a trial call.
	// Defaults to 30s.
	Cooldown time.Duration `yaml:"cooldown" mapstructure:"cooldown"`
}

// CircuitBreaker fails calls fast while the OpenAPI service keeps returning
// transport errors or 5xx responses. Callers ask Allow before a call and
// report the outcome with Record, or Ignore when the outcome says nothing
// about the service (the caller gave up).
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu            sync.Mutex
	state         State
	failures      int
	openedAt      time.Time
	trialInFlight bool
}

// NewCircuitBreaker creates a closed circuit breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = defaultMaxFailures
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultCooldown
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// Allow returns ErrCircuitOpen when the call must not be made. In the
// half-open state only one trial call is admitted at a time.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.current() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if cb.trialInFlight {
			return ErrCircuitOpen
		}
		cb.trialInFlight = true
	}
	return nil
}

// Record reports the outcome of a call admitted by Allow.
func (cb *CircuitBreaker) Record(success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.current()
	cb.trialInFlight = false
	if success {
		// A late success from a call admitted before the circuit opened
		// does not close it.
		if state != StateOpen {
			cb.state = StateClosed
			cb.failures = 0
		}
		return
	}

	cb.failures++
	if state == StateHalfOpen || cb.failures >= cb.cfg.MaxFailures {
		cb.state = StateOpen
		cb.openedAt = cb.now()
	}
}

// Ignore releases a call admitted by Allow without counting it.
func (cb *CircuitBreaker) Ignore() {
	cb.mu.Lock()
	cb.trialInFlight = false
	cb.mu.Unlock()
}

// State returns the current state. An open circuit whose cooldown has
// passed reports half-open.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.current()
}

func (cb *CircuitBreaker) current() State {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.Cooldown {
		cb.state = StateHalfOpen
		cb.trialInFlight = false
	}
	return cb.state
}
