package tolerance

import (
	"sync"
	"sync/atomic"
)

// ---------------------------------------------------------------------------
// Registry — tracks named tolerators and aggregates suppression stats
// ---------------------------------------------------------------------------.

type (
	// StatsReporter is implemented by all Tolerator[T] instances.
	// The interface is non-generic, allowing tolerators with different type
	// parameters to share a registry.
	StatsReporter interface {
		// Name returns the tolerator's name.
		Name() string
		// Stats returns the current suppression counters.
		Stats() ToleratorStats
	}

	// Registry tracks StatsReporter instances and stored configurations.
	//
	// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe lazy
	// init; explicit registries can be created for testing or multi-tenant
	// scenarios.
	Registry struct {
		reporters atomic.Pointer[[]StatsReporter]
		configs   map[string]ToleratorConfig
		mu        sync.Mutex
	}
)

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	var empty []StatsReporter

	r.reporters.Store(&empty)

	return r
}

// Register adds a StatsReporter to the registry.
// This is typically called during startup by New.
// It is safe for concurrent use but intended for initialization only.
func (r *Registry) Register(sr StatsReporter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.reporters.Load()
	// Create a new slice (copy-on-write) to avoid mutating the slice
	// that concurrent readers may be iterating.
	updated := make([]StatsReporter, len(old), len(old)+1)
	copy(updated, old)
	updated = append(updated, sr)
	r.reporters.Store(&updated)
}

// Snapshot iterates all registered reporters and builds a [Report] with
// per-tolerator counters and the total number of suppressed failures.
func (r *Registry) Snapshot() Report {
	reporters := *r.reporters.Load()

	report := Report{
		Tolerators: make([]ToleratorStats, 0, len(reporters)),
	}

	for _, sr := range reporters {
		ts := sr.Stats()
		report.Tolerators = append(report.Tolerators, ts)
		report.Suppressed += ts.Suppressed
	}

	return report
}

// DefaultRegistry returns the package-level global registry, creating it
// on first call.
//
// Pattern: Singleton — lazy initialization via sync.OnceValue ensures exactly
// one global registry exists and is safe for concurrent access.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
