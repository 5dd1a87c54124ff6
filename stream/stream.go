// SPDX-License-Identifier: MIT
// Package stream provides the seeded random stream every lvgen generator draws from.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence within a build.
//   - Explicitness: a Stream is a value created per generator call and passed to every
//     sampling helper; there is no package-level shared generator.
//   - Divergence: unseeded streams mix the wall clock with a process-wide call counter,
//     so two unseeded calls in the same nanosecond still get different seeds.
//
// Concurrency:
//   - A *Stream is NOT goroutine-safe (math/rand.Rand is not). Never share one across goroutines;
//     use Derive to give each worker its own seed.
package stream

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"
)

// unseededCalls counts NewUnseeded invocations; it is mixed into the clock reading.
var unseededCalls atomic.Uint64

// Stream is a deterministic pseudo-random sequence bound to one seed.
type Stream struct {
	seed int64
	r    *rand.Rand
}

// New returns a stream seeded verbatim with seed (0 is a valid seed).
// Complexity: O(1).
func New(seed int64) *Stream {
	return &Stream{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// NewUnseeded returns a stream whose seed comes from a high-resolution clock reading
// mixed with a monotonic call counter.
// Complexity: O(1).
func NewUnseeded() *Stream {
	n := unseededCalls.Add(1)
	return New(Derive(time.Now().UnixNano(), n))
}

// Derive mixes a parent seed and a stream index into a new 64-bit seed.
//
// SplitMix64 finalizer (Vigna 2014): small changes in either input produce
// well-distributed, uncorrelated outputs. Derive(p, i) is a pure function.
//
// Complexity: O(1).
func Derive(parent int64, index uint64) int64 {
	x := uint64(parent) ^ (index + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Seed reports the seed this stream was created with.
func (s *Stream) Seed() int64 { return s.seed }

// Intn returns a uniform integer in [0, bound). Panics if bound <= 0.
func (s *Stream) Intn(bound int) int { return s.r.Intn(bound) }

// Float64 returns a uniform real in [0, 1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Int64Range returns a uniform integer in [min, max). Panics if max <= min.
// Spans wider than math.MaxInt64 are drawn by rejection on Uint64.
func (s *Stream) Int64Range(min, max int64) int64 {
	if max <= min {
		panic("stream: Int64Range with max <= min")
	}
	span := uint64(max) - uint64(min)
	if span <= math.MaxInt64 {
		return min + s.r.Int63n(int64(span))
	}
	for {
		if x := s.r.Uint64(); x < span {
			return int64(uint64(min) + x)
		}
	}
}
