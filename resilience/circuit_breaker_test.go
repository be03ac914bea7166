package resilience

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(maxFailures int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1690000000, 0)}
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: maxFailures, Cooldown: time.Minute})
	cb.now = clock.Now
	return cb, clock
}

func call(t *testing.T, cb *CircuitBreaker, success bool) {
	t.Helper()
	if err := cb.Allow(); err != nil {
		t.Fatalf("expected call to be admitted, got %v", err)
	}
	cb.Record(success)
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	if cb.cfg.MaxFailures != defaultMaxFailures || cb.cfg.Cooldown != defaultCooldown {
		t.Errorf("unexpected defaults %+v", cb.cfg)
	}
	if cb.State() != StateClosed {
		t.Errorf("expected closed, got %s", cb.State())
	}
}

func TestCircuitBreaker_OpensOnConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(3)

	call(t, cb, false)
	call(t, cb, false)
	call(t, cb, true)
	call(t, cb, false)
	call(t, cb, false)
	if cb.State() != StateClosed {
		t.Fatalf("a success must reset the count, got %s", cb.State())
	}

	call(t, cb, false)
	if cb.State() != StateOpen {
		t.Fatalf("expected open, got %s", cb.State())
	}
	if err := cb.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenTrialCall(t *testing.T) {
	tests := []struct {
		name  string
		after func(cb *CircuitBreaker)
		want  State
	}{
		{"success closes", func(cb *CircuitBreaker) { cb.Record(true) }, StateClosed},
		{"failure reopens", func(cb *CircuitBreaker) { cb.Record(false) }, StateOpen},
		{"ignored trial call stays half-open", func(cb *CircuitBreaker) { cb.Ignore() }, StateHalfOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(1)
			call(t, cb, false)

			clock.Advance(59 * time.Second)
			if cb.State() != StateOpen {
				t.Fatalf("expected open during cooldown, got %s", cb.State())
			}
			clock.Advance(time.Second)
			if cb.State() != StateHalfOpen {
				t.Fatalf("expected half-open after cooldown, got %s", cb.State())
			}

			if err := cb.Allow(); err != nil {
				t.Fatalf("expected trial call to be admitted, got %v", err)
			}
			if err := cb.Allow(); !errors.Is(err, ErrCircuitOpen) {
				t.Fatalf("expected a second trial call to be rejected, got %v", err)
			}
			tt.after(cb)
			if got := cb.State(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCircuitBreaker_IgnoredTrialFreesSlot(t *testing.T) {
	cb, clock := newTestBreaker(1)
	call(t, cb, false)
	clock.Advance(time.Minute)

	if err := cb.Allow(); err != nil {
		t.Fatalf("expected trial call, got %v", err)
	}
	cb.Ignore()
	call(t, cb, true)
	if cb.State() != StateClosed {
		t.Errorf("expected closed, got %s", cb.State())
	}
}

func TestCircuitBreaker_LateSuccessKeepsCircuitOpen(t *testing.T) {
	cb, _ := newTestBreaker(1)

	// Two calls in flight; the first fails and opens the circuit.
	_ = cb.Allow()
	_ = cb.Allow()
	cb.Record(false)
	cb.Record(true)

	if cb.State() != StateOpen {
		t.Errorf("expected open, got %s", cb.State())
	}
}

func TestState_String(t *testing.T) {
	for state, want := range map[State]string{
		StateClosed:   "closed",
		StateOpen:     "open",
		StateHalfOpen: "half-open",
		State(9):      "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("State(%d): expected %q, got %q", state, want, got)
		}
	}
}
