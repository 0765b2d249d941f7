// Package leaktest checks that a test gives back the goroutines it starts
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker remembers the goroutine count at the start of a test
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines are still running after
// the settle timeout. Goroutines that are merely winding down get time to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked, ok := waitFor(g.before + tolerance); !ok {
		g.t.Errorf("goroutine leak: before=%d, after=%d, tolerance=%d", g.before, g.before+leaked, tolerance)
	}
}

// Verify checks for leaked goroutines when the test finishes
func Verify(t testing.TB, tolerance int) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}

// waitFor polls until at most limit goroutines run, returning how many are left over
// the starting count when it gives up
func waitFor(limit int) (int, bool) {
	deadline := time.Now().Add(settleTimeout)
	for {
		n := runtime.NumGoroutine()
		if n <= limit {
			return 0, true
		}
		if time.Now().After(deadline) {
			return n - limit, false
		}
		time.Sleep(pollInterval)
	}
}
