// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// impl_random_edges.go - implementation of RandomEdges(n, m) constructor.
//
// Canonical model:
//   - Erdős–Rényi by count: exactly m independent trials; each trial draws two endpoint
//     indices uniformly from [0,n).
//   - A self-pair drawn while loops are disabled is DROPPED, not retried, so the realized
//     candidate count is ≤ m.
//   - Duplicate pairs are passed through; the graph decides whether to keep them.
//
// Contract:
//   - n ≥ 1, m ≥ 0 (else ErrTooFewVertices).
//   - Weighted target ⇒ min_weight < max_weight (else ErrBadWeightRange).
//   - WithSelfLoops(true) requires g.Looped() (else ErrUnsupportedGraphMode).
//   - Adds vertices idFn(0..n-1) in ascending order, then the kept candidates.
//
// Complexity:
//   - Time: O(n + m). Space: O(n) for the vertex batch; candidates are streamed.
//
// Determinism:
//   - Per trial: Intn(n) for u, Intn(n) for v, then one weight draw if kept and weighted.

package builder

import (
	"github.com/katalvlaran/lvgen/core"
)

// RandomEdges returns a Constructor that samples m endpoint pairs uniformly over n vertices.
func RandomEdges(n, m int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		// 1) Validate everything before drawing or mutating.
		if err := validateMin(methodRandomEdges, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateMin(methodRandomEdges, "m", m, 0); err != nil {
			return err
		}
		weighted := g.Weighted()
		if err := validateWeightRange(methodRandomEdges, weighted, cfg); err != nil {
			return err
		}
		if err := validateLoops(methodRandomEdges, g, cfg); err != nil {
			return err
		}

		// 2) Open this call's stream and add the node set.
		s := newStream(cfg)
		if err := addIndexedVertices(methodRandomEdges, g, cfg, n); err != nil {
			return err
		}

		// 3) Stream the m trials into the graph.
		trials := func(yield func(core.EdgeSpec) bool) {
			for trial := 0; trial < m; trial++ {
				u, v := s.Intn(n), s.Intn(n)
				if u == v && !cfg.loops {
					continue
				}
				if !yield(edgeSpec(cfg, u, v, drawWeight(weighted, cfg, s))) {
					return
				}
			}
		}

		return addCandidates(methodRandomEdges, g, trials)
	}
}
