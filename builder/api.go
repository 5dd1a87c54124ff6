// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// api.go - public entry points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildGraph (fresh core.Graph) and Apply (existing Graph).
//     Both resolve options once and run constructors in order.
//   - Model factories live in impl_*.go; each returns a Constructor closure.
//   - Constructors validate everything before drawing or mutating: an ErrConfiguration
//     return leaves the target graph untouched.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors.
//
// AI-Hints (practical):
//   - Compose several constructors in one BuildGraph call; each opens its own stream from the seed.
//   - Use Apply to layer a model on top of prior graph content; nothing is ever removed.

package builder

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/core"
)

// Graph is the capability set generators need from their target.
// *core.Graph satisfies it for all four directed/weighted variants.
type Graph interface {
	// Directed reports whether edges are one-way.
	Directed() bool
	// Weighted reports whether edges carry weights.
	Weighted() bool
	// Looped reports whether the graph keeps self-loops.
	Looped() bool
	// AddVertices inserts missing vertices; present IDs are no-ops.
	AddVertices(ids ...string) error
	// AddEdges merges candidates and returns how many were kept.
	AddEdges(edges iter.Seq[core.EdgeSpec]) (int, error)
	// Vertices enumerates current vertex IDs.
	Vertices() []string
	// Successors enumerates the vertices one edge away from id.
	Successors(id string) ([]string, error)
}

var _ Graph = (*core.Graph)(nil)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the target graph's mode (directed/weighted/loops).
//   - Preserve determinism for the same config and call order.
type Constructor func(g Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, in order, mutating it in place.
// Prior vertices and edges are preserved. On error, constructors that already ran keep
// their effects; the failing constructor leaves no trace if it failed with ErrConfiguration
// or ErrGeneration.
func Apply(g Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrUnsupportedGraphMode)
	}
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

// run executes cons sequentially against g.
func run(g Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConfiguration)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
