// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// impl_circulant.go - implementation of Circulant(n, k) constructor.
//
// Contract:
//   • k ≥ 0 and n > 2k, n ≥ 1 (else ErrTooFewVertices): every node reaches k distinct
//     forward neighbors without the ring folding onto itself.
//   • Weighted target ⇒ min_weight < max_weight (else ErrBadWeightRange); every edge gets
//     the constant weight min_weight. No stream is opened.
//   • Adds vertices idFn(0..n-1), then edges i → (i+d) mod n for i asc, d = 1..k asc.
//
// Complexity:
//   • Time: O(n) vertices + O(n·k) edges. Space: O(n); edges are streamed.
//
// Determinism:
//   • Fully deterministic: identical arguments ⇒ identical node and edge sets.
//   • Directed targets receive exactly n·k edges; for n > 2k the undirected pairs are
//     distinct as well, so undirected targets also receive n·k edges.

package builder

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/core"
)

// Circulant returns a Constructor that builds the ring lattice C_n(1..k).
func Circulant(n, k int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		weighted := g.Weighted()
		if err := validateCirculant(methodCirculant, n, k, weighted, cfg); err != nil {
			return err
		}

		return addCirculant(g, cfg, n, k, weighted)
	}
}

// validateCirculant checks the ring-lattice domain; shared with NewmanWatts.
func validateCirculant(method string, n, k int, weighted bool, cfg builderConfig) error {
	if err := validateMin(method, "k", k, 0); err != nil {
		return err
	}
	if err := validateMin(method, "n", n, MinVertices); err != nil {
		return err
	}
	if n <= 2*k {
		return fmt.Errorf("%s: n=%d must exceed 2k=%d: %w", method, n, 2*k, ErrTooFewVertices)
	}

	return validateWeightRange(method, weighted, cfg)
}

// addCirculant mutates g with the validated lattice.
func addCirculant(g Graph, cfg builderConfig, n, k int, weighted bool) error {
	if err := addIndexedVertices(methodCirculant, g, cfg, n); err != nil {
		return err
	}
	var w int64
	if weighted {
		w = cfg.minWeight
	}

	return addCandidates(methodCirculant, g, circulantEdges(cfg, n, k, w))
}

// circulantEdges yields (i, (i+d) mod n) for i asc, d = 1..k asc.
func circulantEdges(cfg builderConfig, n, k int, w int64) iter.Seq[core.EdgeSpec] {
	return func(yield func(core.EdgeSpec) bool) {
		for i := 0; i < n; i++ {
			for d := 1; d <= k; d++ {
				if !yield(edgeSpec(cfg, i, (i+d)%n, w)) {
					return
				}
			}
		}
	}
}
