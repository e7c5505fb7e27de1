// Package leaktest checks that code under test releases the goroutines it starts.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultWait bounds how long Check waits for goroutines to exit
	DefaultWait = 2 * time.Second
)

// GoroutineChecker records the goroutine count at creation and later
// verifies that the count has returned to that baseline
type GoroutineChecker struct {
	before int
	wait   time.Duration
	t      testing.TB
}

// NewGoroutineChecker creates a checker with the current goroutine count as baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		wait:   DefaultWait,
		t:      t,
	}
}

// WithWait overrides how long Check polls before reporting a leak
func (g *GoroutineChecker) WithWait(wait time.Duration) *GoroutineChecker {
	g.wait = wait
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the
// test if that does not happen within the wait budget
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.wait)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
