package tolerance

import (
	"sync"
	"sync/atomic"
)

// State is a suppression kill switch shared by every tolerator reading it.
// While disabled, errors propagate regardless of per-call switch results —
// useful for debugging sessions and test environments where silent failures
// would hide bugs. The flag is read-mostly: set it once at startup or in a
// test fixture rather than toggling it under contention.
//
// Pattern: Singleton — DefaultState uses sync.OnceValue for safe lazy init;
// explicit states can be created for tests or library-internal scopes.
type State struct {
	disabled atomic.Bool
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultState = sync.OnceValue(NewState)

// NewState returns a State with suppression enabled.
func NewState() *State { return &State{} }

// Disable turns suppression off for every tolerator reading this state.
func (s *State) Disable() { s.disabled.Store(true) }

// Enable turns suppression back on.
func (s *State) Enable() { s.disabled.Store(false) }

// Disabled reports whether suppression is currently disabled.
func (s *State) Disabled() bool { return s.disabled.Load() }

// DefaultState returns the package-level shared state, creating it on first
// call. Every tolerator reads it unless [WithState] injects another one.
func DefaultState() *State { return defaultState() }

// Disable turns suppression off process-wide via the default state.
func Disable() { DefaultState().Disable() }

// Enable turns suppression back on process-wide via the default state.
func Enable() { DefaultState().Enable() }

// Disabled reports whether the default state has suppression disabled.
func Disabled() bool { return DefaultState().Disabled() }
