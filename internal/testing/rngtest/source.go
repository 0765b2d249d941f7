// Package rngtest provides scripted random sources for deterministic engine tests.
package rngtest

import (
	"testing"
)

// Source replays scripted draws. Float64 and IntN draw from separate queues; once a
// queue is exhausted the fallback value is returned.
type Source struct {
	t         testing.TB
	floats    []float64
	ints      []int
	FloatMiss float64
	IntMiss   int
	Strict    bool
}

// New creates a scripted source. With no scripted values, Float64 returns 0.99 (no
// probabilistic event fires) and IntN returns 0.
func New(t testing.TB) *Source {
	return &Source{t: t, FloatMiss: 0.99}
}

// Floats queues Float64 draws
func (s *Source) Floats(values ...float64) *Source {
	s.floats = append(s.floats, values...)
	return s
}

// Ints queues IntN draws. Each value is reduced modulo n when drawn.
func (s *Source) Ints(values ...int) *Source {
	s.ints = append(s.ints, values...)
	return s
}

// Float64 implements random.Source
func (s *Source) Float64() float64 {
	if len(s.floats) == 0 {
		if s.Strict {
			s.t.Helper()
			s.t.Fatalf("rngtest: unexpected Float64 draw")
		}
		return s.FloatMiss
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// IntN implements random.Source
func (s *Source) IntN(n int) int {
	if len(s.ints) == 0 {
		if s.Strict {
			s.t.Helper()
			s.t.Fatalf("rngtest: unexpected IntN draw")
		}
		return s.IntMiss % n
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// Remaining reports how many scripted draws are unused
func (s *Source) Remaining() (floats, ints int) {
	return len(s.floats), len(s.ints)
}
