package tolerance

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) advance(d time.Duration)         { c.now = c.now.Add(d) }

// ---------------------------------------------------------------------------
// RealClock sanity
// ---------------------------------------------------------------------------

func TestRealClockNow(t *testing.T) {
	clk := RealClock{}
	before := time.Now()
	got := clk.Now()

	if got.Before(before) {
		t.Fatalf("Now() = %v, before %v", got, before)
	}
}

func TestRealClockSince(t *testing.T) {
	clk := RealClock{}
	start := time.Now().Add(-time.Second)

	if clk.Since(start) < time.Second {
		t.Fatal("Since() under a second for a second-old timestamp")
	}
}

// ---------------------------------------------------------------------------
// fakeClock behaves as a Clock
// ---------------------------------------------------------------------------

func TestFakeClockAdvance(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()

	clk.advance(90 * time.Second)

	if got := clk.Since(start); got != 90*time.Second {
		t.Fatalf("Since() = %v, want 90s", got)
	}
}
