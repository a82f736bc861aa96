// Package rng provides small helpers on top of math/rand. Every consumer
// takes a *rand.Rand so generation stays reproducible under a fixed seed.
package rng

import "math/rand"

// WeightedIndex picks an index with probability proportional to its weight.
// Negative weights count as zero. Returns -1 when no weight is positive.
func WeightedIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return i
		}
	}

	// Float underflow on the last step lands on the final positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
