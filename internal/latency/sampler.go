// Package latency simulates per-stage processing cost with a seeded uniform
// sampler. Each worker owns its own Sampler instance so a fixed seed
// reproduces the exact latency sequence without sharing a global RNG.
package latency

import (
	"math/rand"
	"time"
)

// Sampler draws uniform durations from [Min, Max]. It is not safe for
// concurrent use; give each goroutine its own instance.
type Sampler struct {
	min time.Duration
	max time.Duration
	rng *rand.Rand
}

// NewSampler builds a seeded sampler over [min, max]. A max below min is
// clamped to min, which degenerates to a fixed latency.
func NewSampler(min, max time.Duration, seed int64) *Sampler {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &Sampler{min: min, max: max, rng: rand.New(rand.NewSource(seed))}
}

// Sample returns the next simulated processing duration.
func (s *Sampler) Sample() time.Duration {
	span := s.max - s.min
	if span <= 0 {
		return s.min
	}
	return s.min + time.Duration(s.rng.Int63n(int64(span)+1))
}
