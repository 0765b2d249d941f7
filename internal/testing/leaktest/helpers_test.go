package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	wg.Add(3)
	for range 3 {
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
	}
	wg.Wait()

	checker.Check(0)
}

func TestCheck_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go time.Sleep(50 * time.Millisecond)

	checker.Check(0)
}

func TestCheck_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
}

func TestWaitFor_ReportsLeftovers(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	before := NewGoroutineChecker(t).before
	go func() { <-done }()
	go func() { <-done }()

	start := time.Now()
	leaked, ok := waitFor(before)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, leaked, 2)
	assert.GreaterOrEqual(t, time.Since(start), settleTimeout)
}

func TestVerify(t *testing.T) {
	Verify(t, 0)
	var wg sync.WaitGroup
	wg.Add(1)
	go wg.Done()
	wg.Wait()
}
