package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/openapi-go/component"
	"github.com/kbukum/openapi-go/testutil"
)

type fakeComponent struct {
	name     string
	started  bool
	resets   int
	state    string
	startErr error
	stopErr  error
	order    *[]string
}

func newFake(name string, order *[]string) *fakeComponent {
	return &fakeComponent{name: name, order: order}
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	if f.order != nil {
		*f.order = append(*f.order, "start:"+f.name)
	}
	return nil
}

func (f *fakeComponent) Stop(context.Context) error {
	if f.order != nil {
		*f.order = append(*f.order, "stop:"+f.name)
	}
	f.started = false
	return f.stopErr
}

func (f *fakeComponent) Health(context.Context) component.Health {
	return component.Health{Name: f.name, Status: component.StatusHealthy}
}

func (f *fakeComponent) Reset(context.Context) error {
	f.resets++
	f.state = ""
	return nil
}

func (f *fakeComponent) Snapshot(context.Context) (any, error) { return f.state, nil }

func (f *fakeComponent) Restore(_ context.Context, s any) error {
	str, ok := s.(string)
	if !ok {
		return errors.New("bad snapshot")
	}
	f.state = str
	return nil
}

func TestSetup(t *testing.T) {
	c := newFake("fake", nil)
	cleanup, err := testutil.Setup(c)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if !c.started {
		t.Fatal("expected component to be started")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if c.started {
		t.Error("expected component to be stopped")
	}
}

func TestSetup_StartError(t *testing.T) {
	c := newFake("fake", nil)
	c.startErr = errors.New("boom")
	if _, err := testutil.Setup(c); err == nil {
		t.Fatal("expected start error")
	}
}

func TestTHelper(t *testing.T) {
	c := newFake("fake", nil)
	t.Run("lifecycle", func(t *testing.T) {
		h := testutil.T(t)
		h.Setup(c)
		c.state = "dirty"
		snap := h.Snapshot(c)
		h.Reset(c)
		if c.state != "" || c.resets != 1 {
			t.Errorf("expected reset state, got %q after %d resets", c.state, c.resets)
		}
		h.Restore(c, snap)
		if c.state != "dirty" {
			t.Errorf("expected restored state, got %q", c.state)
		}
	})
	if c.started {
		t.Error("expected cleanup to stop the component when the subtest ended")
	}
}

func TestManager(t *testing.T) {
	var order []string
	m := testutil.NewManager(context.Background())
	a, b := newFake("a", &order), newFake("b", &order)
	m.Add(a)
	m.Add(b)

	if m.Get("b") != b || m.Get("missing") != nil {
		t.Error("unexpected Get result")
	}
	if err := m.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}
	if a.resets != 1 || b.resets != 1 {
		t.Error("expected every component to be reset")
	}

	a.stopErr = errors.New("a failed")
	b.stopErr = errors.New("b failed")
	err := m.StopAll()
	if err == nil || !errors.Is(err, a.stopErr) || !errors.Is(err, b.stopErr) {
		t.Errorf("expected joined stop errors, got %v", err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestManager_StartAllStopsAtFirstFailure(t *testing.T) {
	m := testutil.NewManager(context.Background())
	bad := newFake("bad", nil)
	bad.startErr = errors.New("boom")
	later := newFake("later", nil)
	m.Add(bad)
	m.Add(later)

	if err := m.StartAll(); err == nil {
		t.Fatal("expected start failure")
	}
	if later.started {
		t.Error("expected later component not to start")
	}
}
