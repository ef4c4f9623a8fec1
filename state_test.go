package tolerance

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// State: toggle round-trip
// ---------------------------------------------------------------------------

func TestStateToggle(t *testing.T) {
	state := NewState()

	if state.Disabled() {
		t.Fatal("new state should start enabled")
	}

	state.Disable()

	if !state.Disabled() {
		t.Fatal("Disabled() = false after Disable()")
	}

	state.Enable()

	if state.Disabled() {
		t.Fatal("Disabled() = true after Enable()")
	}
}

// ---------------------------------------------------------------------------
// Package-level shims drive the default state
// ---------------------------------------------------------------------------

func TestDefaultStateShims(t *testing.T) {
	t.Cleanup(Enable)

	sentinel := errors.New("attribute error")
	tol := New[string]("")
	fn := tol.Wrap(func(_ context.Context, _ Args, _ Kwargs) (string, error) {
		return "", sentinel
	})

	// Suppression on by default.
	if _, err := fn(context.Background(), nil, nil); err != nil {
		t.Fatalf("fn() error = %v, want nil", err)
	}

	Disable()

	if !Disabled() {
		t.Fatal("Disabled() = false after Disable()")
	}

	if _, err := fn(context.Background(), nil, nil); !errors.Is(err, sentinel) {
		t.Fatalf("fn() error = %v, want %v while disabled", err, sentinel)
	}

	Enable()

	if _, err := fn(context.Background(), nil, nil); err != nil {
		t.Fatalf("fn() error = %v, want nil after Enable()", err)
	}
}

// ---------------------------------------------------------------------------
// DefaultState returns the same instance on every call
// ---------------------------------------------------------------------------

func TestDefaultStateIsSingleton(t *testing.T) {
	if DefaultState() != DefaultState() {
		t.Fatal("DefaultState() returned different instances")
	}
}

// ---------------------------------------------------------------------------
// A private state does not affect the default one
// ---------------------------------------------------------------------------

func TestPrivateStateIsIndependent(t *testing.T) {
	state := NewState()
	state.Disable()

	if Disabled() {
		t.Fatal("private state leaked into the default state")
	}
}
