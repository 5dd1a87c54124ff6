// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// impl_newman_watts.go - implementation of NewmanWatts(n, k, phi) and AddShortcuts(n, phi).
//
// Canonical model:
//   - Small world = Circulant(n, k) base + at most one random shortcut per node.
//   - Shortcut target is uniform over the FULL node range [0,n), the source node included;
//     a self-shortcut is handed to the graph, which keeps it only if it allows loops.
//   - Shortcut sources and targets are the generated indices idFn(0..n-1) only. Vertices the
//     target graph held before the call never receive or absorb a shortcut.
//
// Contract:
//   - Circulant domain (k ≥ 0, n > 2k) and 0 ≤ phi ≤ 1, all checked before any mutation.
//   - Weighted target ⇒ min_weight < max_weight (else ErrBadWeightRange).
//     Lattice edges carry min_weight, shortcuts draw a weight from [min_weight, max_weight).
//
// Complexity:
//   - Time: O(n·k) lattice + O(n) shortcut trials. Space: O(n).
//
// Determinism:
//   - Node order: index asc. Per node: one Float64(); if < phi, Intn(n) for the target,
//     then one weight draw on weighted graphs.

package builder

import (
	"iter"

	"github.com/katalvlaran/lvgen/core"
	"github.com/katalvlaran/lvgen/stream"
)

// NewmanWatts returns a Constructor that builds a circulant ring lattice and layers
// random shortcuts on top of it with per-node probability phi.
func NewmanWatts(n, k int, phi float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		weighted := g.Weighted()
		if err := validateCirculant(methodNewmanWatts, n, k, weighted, cfg); err != nil {
			return err
		}
		if err := validateProbability(methodNewmanWatts, "phi", phi); err != nil {
			return err
		}

		if err := addCirculant(g, cfg, n, k, weighted); err != nil {
			return err
		}

		s := newStream(cfg)
		return addCandidates(methodNewmanWatts, g, shortcutEdges(cfg, s, n, phi, weighted))
	}
}

// AddShortcuts returns a Constructor that gives each of the nodes idFn(0..n-1) one shortcut
// with probability phi. Missing nodes are created; existing content is preserved.
func AddShortcuts(n int, phi float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodShortcuts, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(methodShortcuts, "phi", phi); err != nil {
			return err
		}
		weighted := g.Weighted()
		if err := validateWeightRange(methodShortcuts, weighted, cfg); err != nil {
			return err
		}

		if err := addIndexedVertices(methodShortcuts, g, cfg, n); err != nil {
			return err
		}
		s := newStream(cfg)

		return addCandidates(methodShortcuts, g, shortcutEdges(cfg, s, n, phi, weighted))
	}
}

// shortcutEdges yields the accepted shortcuts in node order.
func shortcutEdges(cfg builderConfig, s *stream.Stream, n int, phi float64, weighted bool) iter.Seq[core.EdgeSpec] {
	return func(yield func(core.EdgeSpec) bool) {
		for i := 0; i < n; i++ {
			if s.Float64() >= phi {
				continue
			}
			j := s.Intn(n)
			if !yield(edgeSpec(cfg, i, j, drawWeight(weighted, cfg, s))) {
				return
			}
		}
	}
}
