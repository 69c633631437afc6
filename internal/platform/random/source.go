// Package random provides the pseudo-random integer source used for
// quote selection. It implements ports.RandomSource.
package random

import "math/rand/v2"

// Source produces uniformly distributed integers within a half-open range.
// The zero-configuration Source draws from the process-wide generator;
// seeded sources are deterministic and intended for tests.
type Source struct {
	rng *rand.Rand
}

// New returns a Source backed by the shared process-wide generator.
func New() *Source {
	return &Source{}
}

// NewSeeded returns a deterministic Source seeded with the given values.
// Two sources with the same seeds produce the same sequence.
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntN returns an integer r with min <= r < max.
// Panics if min >= max, matching math/rand/v2 semantics.
func (s *Source) IntN(min, max int) int {
	if s.rng != nil {
		return min + s.rng.IntN(max-min)
	}

	return min + rand.IntN(max-min)
}
