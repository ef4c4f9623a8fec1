package tolerance

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// ---------------------------------------------------------------------------
// Suppression stats
// ---------------------------------------------------------------------------.

type (
	// ToleratorStats is a point-in-time view of one tolerator's counters.
	ToleratorStats struct {
		LastSuppressed *time.Time `json:"last_suppressed,omitempty"`
		Name           string     `json:"name"`
		Calls          int64      `json:"calls"`
		Suppressed     int64      `json:"suppressed"`
		Propagated     int64      `json:"propagated"`
		Recovered      int64      `json:"recovered"`
		Disabled       bool       `json:"disabled"`
	}

	// Report aggregates the stats of all tolerators in a [Registry].
	Report struct {
		Tolerators []ToleratorStats `json:"tolerators"`
		Suppressed int64            `json:"suppressed"`
	}
)

// Stats returns the tolerator's current counters. Counters are read with
// atomic loads, so a snapshot taken under concurrent calls is internally
// consistent per field.
func (t *Tolerator[T]) Stats() ToleratorStats {
	stats := ToleratorStats{
		Name:       t.name,
		Calls:      t.calls.Load(),
		Suppressed: t.suppressed.Load(),
		Propagated: t.propagated.Load(),
		Recovered:  t.recovered.Load(),
		Disabled:   t.state.Disabled(),
	}

	if ts := t.lastSuppressed.Load(); ts != nil {
		stats.LastSuppressed = ts
	}

	return stats
}

// SinceSuppressed returns the time elapsed since the tolerator last
// suppressed a failure, measured by its clock. The second return value is
// false when nothing has been suppressed yet.
func (t *Tolerator[T]) SinceSuppressed() (time.Duration, bool) {
	ts := t.lastSuppressed.Load()
	if ts == nil {
		return 0, false
	}

	return t.clock.Since(*ts), true
}

// StatsHandler returns an [http.Handler] that reports the suppression stats
// of all tolerators registered with reg. It always responds with 200 OK; the
// response body is a JSON-encoded [Report].
func StatsHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		report := reg.Snapshot()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusOK)

		//nolint:errcheck // best-effort JSON encoding to HTTP response
		_ = json.NewEncoder(writer).Encode(report)
	})
}
