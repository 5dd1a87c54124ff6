// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil functions).
//     Range checks that depend on the target graph (weight range on weighted graphs)
//     are reported by the constructors as ErrConfiguration instead.
//   • Determinism is explicit: seeding is done via WithSeed only.
//
// AI-Hints:
//   • Use WithSeed in tests and examples to lock outcomes.
//   • WithWeightRange matters only when the target graph is Weighted().

package builder

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed fixes the seed of every stream opened by the constructors.
// Two runs with the same seed, options and constructor order produce identical graphs.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed, c.seeded = seed, true
	}
}

// WithWeightRange sets the half-open integer weight range [min, max) used on weighted graphs.
// The range is validated against the target graph at construction time (ErrBadWeightRange).
// Complexity: O(1).
func WithWeightRange(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = min, max
	}
}

// WithSelfLoops controls whether RandomEdges and RandomProbability may emit (i,i) pairs.
// Enabling it on a graph that forbids loops is rejected with ErrUnsupportedGraphMode.
// Complexity: O(1).
func WithSelfLoops(loops bool) BuilderOption {
	return func(c *builderConfig) {
		c.loops = loops
	}
}

// WithIDScheme sets the deterministic vertex ID generator: index -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}
