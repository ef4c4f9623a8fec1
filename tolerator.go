package tolerance

import (
	"context"
	"errors"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// ---------------------------------------------------------------------------
// Tolerator[T] — the central integration type
// ---------------------------------------------------------------------------

// Tolerator converts failures of a wrapped function into a substitute return
// value, under the control of a per-call switch, an error filter and a
// shared disable [State]. Use [New] with functional options to configure it.
//
// Pattern: Functional Options — configures Tolerator[T] via composable
// option functions; generic options use any to work around Go's generic type
// constraint on function signatures.
type Tolerator[T any] struct {
	name          string
	hooks         Hooks
	clock         Clock
	state         *State
	sw            Switch
	match         func(error) bool
	recoverPanics bool

	substitute     T
	substituteFunc func(args Args, kwargs Kwargs) (T, error)

	// Counters for registry snapshots.
	calls          atomic.Int64
	suppressed     atomic.Int64
	propagated     atomic.Int64
	recovered      atomic.Int64
	lastSuppressed atomic.Pointer[time.Time]

	// Registry this tolerator is registered with (nil if anonymous or opted
	// out).
	registry *Registry
}

// Name returns the tolerator's name.
func (t *Tolerator[T]) Name() string { return t.name }

// Wrap returns fn decorated with this tolerator's suppression behavior.
// The returned function has the same calling convention as fn, minus
// whatever arguments the switch consumes.
func (t *Tolerator[T]) Wrap(fn Func[T]) Func[T] {
	return t.Middleware()(fn)
}

// Call executes fn once through the tolerator.
func (t *Tolerator[T]) Call(ctx context.Context, fn Func[T], args Args, kwargs Kwargs) (T, error) {
	return t.call(ctx, fn, args, kwargs)
}

// Middleware returns the tolerator as a composable [Middleware], so several
// tolerators (or other wrappers) can be stacked with [Chain].
func (t *Tolerator[T]) Middleware() Middleware[T] {
	return func(next Func[T]) Func[T] {
		return func(ctx context.Context, args Args, kwargs Kwargs) (T, error) {
			return t.call(ctx, next, args, kwargs)
		}
	}
}

func (t *Tolerator[T]) call(ctx context.Context, fn Func[T], args Args, kwargs Kwargs) (T, error) {
	t.calls.Add(1)

	suppress, fwdArgs, fwdKwargs, err := t.sw(args, kwargs)
	if err != nil {
		// A failing switch is a wiring bug; its error is never suppressed
		// and never counted against the wrapped function.
		var zero T
		return zero, err
	}

	result, err := t.invoke(ctx, fn, fwdArgs, fwdKwargs)
	if err == nil {
		return result, nil
	}

	switch {
	case !t.matches(err):
		// Outside the filter: always propagate, whatever the switch said.

	case t.state.Disabled():
		t.hooks.emitDisabledBypass(err)

	case suppress:
		t.suppressed.Add(1)
		now := t.clock.Now()
		t.lastSuppressed.Store(&now)
		t.hooks.emitSuppressed(err)

		if t.substituteFunc != nil {
			// A failing substitute propagates; suppression applies only to
			// the wrapped function's own failure.
			return t.substituteFunc(fwdArgs, fwdKwargs)
		}

		return t.substitute, nil
	}

	t.propagated.Add(1)
	t.hooks.emitPropagated(err)

	// A recovered panic that is not suppressed resumes panicking.
	var pe *PanicError
	if errors.As(err, &pe) {
		panic(pe.Value)
	}

	return result, err
}

// invoke runs fn, converting a panic into a *PanicError when panic recovery
// is enabled.
func (t *Tolerator[T]) invoke(ctx context.Context, fn Func[T], args Args, kwargs Kwargs) (result T, err error) {
	if t.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				t.recovered.Add(1)
				t.hooks.emitPanicRecovered(r)
				err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
	}

	return fn(ctx, args, kwargs)
}

// matches reports whether err falls under this tolerator's error filter.
// Explicit classification wrappers beat the filter in either direction.
func (t *Tolerator[T]) matches(err error) bool {
	if IsUnsuppressible(err) {
		return false
	}

	if IsSuppressible(err) {
		return true
	}

	if t.match == nil {
		// Default filter: every error is suppressible.
		return true
	}

	return t.match(err)
}

// ---------------------------------------------------------------------------
// Non-generic option descriptors — stored as any, interpreted by New[T]
// ---------------------------------------------------------------------------

// toleratorOptionFunc is a non-generic option that modifies toleratorSetup.
type toleratorOptionFunc func(*toleratorSetup)

// toleratorSetup holds non-generic configuration collected during New.
type toleratorSetup struct {
	clock         Clock
	hooks         Hooks
	state         *State
	registry      *Registry
	sw            Switch
	match         func(error) bool
	recoverPanics bool
}

// substituteDesc holds a type-erased literal substitute value.
type substituteDesc struct {
	val any
}

// substituteFuncDesc holds a type-erased substitute function.
type substituteFuncDesc struct {
	fn any // func(Args, Kwargs) (T, error) stored as any
}

// ---------------------------------------------------------------------------
// With* functions — all return any
// ---------------------------------------------------------------------------

// WithClock sets the clock used for suppression timestamps.
func WithClock(c Clock) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.clock = c
	})
}

// WithHooks sets the lifecycle hooks invoked on suppression decisions.
func WithHooks(h Hooks) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.hooks = h
	})
}

// WithState sets the disable state read by every call. If not provided, the
// tolerator reads [DefaultState].
func WithState(st *State) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.state = st
	})
}

// WithRegistry sets an explicit registry for the tolerator to register with.
// If not provided, named tolerators auto-register with [DefaultRegistry].
func WithRegistry(reg *Registry) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.registry = reg
	})
}

// WithSwitch sets the per-call switch directly.
func WithSwitch(sw Switch) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.sw = sw
	})
}

// WithSwitchArgument builds the per-call switch from an argument name via
// [ArgumentSwitch]. The default switch, used when no switch option is given,
// is equivalent to WithSwitchArgument(DefaultSwitchArgument).
func WithSwitchArgument(name string, opts ...SwitchOption) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.sw = ArgumentSwitch(name, opts...)
	})
}

// WithErrors restricts suppression to errors matching one of the given
// targets via [errors.Is]. Errors outside the set always propagate.
func WithErrors(targets ...error) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.match = func(err error) bool {
			for _, target := range targets {
				if errors.Is(err, target) {
					return true
				}
			}

			return false
		}
	})
}

// WithErrorFilter restricts suppression to errors for which fn reports true.
//
// Pattern: Strategy — caller injects classification logic. The last
// WithErrors or WithErrorFilter option wins.
func WithErrorFilter(fn func(error) bool) any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.match = fn
	})
}

// WithRecover converts a panic in the wrapped function into a [*PanicError]
// subject to the same suppress-or-propagate decision as a returned error.
// When the decision is to propagate, the tolerator re-panics with the
// original value.
func WithRecover() any {
	return toleratorOptionFunc(func(s *toleratorSetup) {
		s.recoverPanics = true
	})
}

// WithSubstitute sets a literal value returned in place of a suppressed
// error. The value must match the Tolerator's type parameter T. Without a
// substitute option, a suppressed call returns T's zero value.
func WithSubstitute[T any](val T) any {
	return substituteDesc{val: val}
}

// WithSubstituteFunc sets a function computing the substitute lazily, only
// on suppressed failure. It receives the arguments the switch forwarded to
// the wrapped function; its signature must be func(Args, Kwargs) (T, error)
// matching the Tolerator's type parameter.
func WithSubstituteFunc[T any](fn func(args Args, kwargs Kwargs) (T, error)) any {
	return substituteFuncDesc{fn: fn}
}

// ---------------------------------------------------------------------------
// New[T] — construct and wire up the tolerator
// ---------------------------------------------------------------------------

// New creates a new [Tolerator] with the given name and options.
// Options are processed in two phases: first, non-generic options (switch,
// filter, state, clock, hooks) are collected; then, type-erased substitute
// descriptors are asserted against T. Named tolerators auto-register with
// [DefaultRegistry] unless [WithRegistry] overrides it.
func New[T any](name string, opts ...any) *Tolerator[T] {
	var setup toleratorSetup

	// Phase 1: Collect non-generic options.
	for _, opt := range opts {
		if tof, ok := opt.(toleratorOptionFunc); ok {
			tof(&setup)
		}
	}

	if setup.clock == nil {
		setup.clock = RealClock{}
	}

	if setup.state == nil {
		setup.state = DefaultState()
	}

	if setup.sw == nil {
		setup.sw = ArgumentSwitch(DefaultSwitchArgument)
	}

	t := &Tolerator[T]{
		name:          name,
		hooks:         setup.hooks,
		clock:         setup.clock,
		state:         setup.state,
		sw:            setup.sw,
		match:         setup.match,
		recoverPanics: setup.recoverPanics,
	}

	// Phase 2: Interpret type-erased substitute descriptors.
	for _, opt := range opts {
		switch desc := opt.(type) {
		case toleratorOptionFunc:
			// Already processed in phase 1.

		case substituteDesc:
			t.substitute = desc.val.(T)
			t.substituteFunc = nil

		case substituteFuncDesc:
			t.substituteFunc = desc.fn.(func(Args, Kwargs) (T, error))
		}
	}

	// Auto-register if tolerator has a name.
	var reg *Registry
	if name != "" {
		reg = setup.registry
		if reg == nil {
			reg = DefaultRegistry()
		}
	}

	t.registry = reg

	if reg != nil && name != "" {
		reg.Register(t)
	}

	return t
}
