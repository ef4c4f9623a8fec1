package tolerance

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// FailSilently: suppress unless told otherwise
// ---------------------------------------------------------------------------

func TestPresetFailSilently(t *testing.T) {
	sentinel := errors.New("boom")
	tol := New[string]("", FailSilently()...)
	fn := tol.Wrap(func(_ context.Context, _ Args, _ Kwargs) (string, error) {
		return "", sentinel
	})

	if _, err := fn(context.Background(), nil, nil); err != nil {
		t.Fatalf("fn() error = %v, want nil", err)
	}

	_, err := fn(context.Background(), nil, Kwargs{"fail_silently": false})
	if !errors.Is(err, sentinel) {
		t.Fatalf("fn() error = %v, want %v", err, sentinel)
	}
}

// ---------------------------------------------------------------------------
// Strict: propagate unless told otherwise
// ---------------------------------------------------------------------------

func TestPresetStrict(t *testing.T) {
	sentinel := errors.New("boom")
	tol := New[string]("", Strict()...)
	fn := tol.Wrap(func(_ context.Context, _ Args, _ Kwargs) (string, error) {
		return "", sentinel
	})

	_, err := fn(context.Background(), nil, nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("fn() error = %v, want %v", err, sentinel)
	}

	if _, err := fn(context.Background(), nil, Kwargs{"fail_silently": true}); err != nil {
		t.Fatalf("fn() error = %v, want nil", err)
	}
}

// ---------------------------------------------------------------------------
// Guarded: panics are suppressed like errors
// ---------------------------------------------------------------------------

func TestPresetGuarded(t *testing.T) {
	tol := New[string]("", append(Guarded(), WithSubstitute("safe"))...)

	result, err := tol.Call(
		context.Background(),
		func(_ context.Context, _ Args, _ Kwargs) (string, error) {
			panic("kaboom")
		},
		nil, nil,
	)
	if err != nil {
		t.Fatalf("Call() error = %v, want nil", err)
	}
	if result != "safe" {
		t.Fatalf("Call() = %q, want %q", result, "safe")
	}
}
