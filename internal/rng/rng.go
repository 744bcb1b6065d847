// Package rng provides the random sources injected into the simulation.
package rng

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Source draws inclusive random integers from a seeded PCG generator.
type Source struct {
	r    *rand.Rand
	seed uint64
}

// New creates a source seeded with seed.
func New(seed uint64) *Source {
	return &Source{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), // #nosec G404 -- game only
		seed: seed,
	}
}

// FromPhrase creates a source whose seed is the xxhash of phrase.
// An empty phrase seeds from the wall clock.
func FromPhrase(phrase string) *Source {
	return New(SeedFromPhrase(phrase))
}

// SeedFromPhrase hashes a human-readable seed phrase into a 64-bit seed.
func SeedFromPhrase(phrase string) uint64 {
	if phrase == "" {
		return uint64(time.Now().UnixNano())
	}
	return xxhash.Sum64String(phrase)
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Int returns a uniform integer in [min, max]. Swapped bounds are tolerated.
func (s *Source) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}

// Sequence replays a fixed list of draws, clamping each one into the
// requested range. Once exhausted it returns the lower bound.
// Used for scripted sessions and tests.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a replay source for values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Push appends more draws to the sequence.
func (q *Sequence) Push(values ...int) {
	q.values = append(q.values, values...)
}

// Remaining reports how many scripted draws are left.
func (q *Sequence) Remaining() int {
	return len(q.values) - q.next
}

// Int returns the next scripted value clamped into [min, max].
func (q *Sequence) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if q.next >= len(q.values) {
		return min
	}
	v := q.values[q.next]
	q.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
