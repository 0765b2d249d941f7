package random

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source supplies the random draws used by the game engines. Engines never reach for a
// global generator, so every branch can be replayed with a scripted source.
type Source interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
	// IntN returns a number in [0, n)
	IntN(n int) int
}

// New returns a deterministic source for the given seed
func New(seed int64) Source {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Chance reports whether an event with probability p happens on this draw
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Pick returns a uniformly chosen index in [0, n), or -1 when n is zero
func Pick(src Source, n int) int {
	if n <= 0 {
		return -1
	}
	return src.IntN(n)
}

// Weighted draws an index from weights proportionally. Non-positive weights are never
// drawn; -1 is returned when nothing can be drawn.
func Weighted(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := src.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	return last
}
