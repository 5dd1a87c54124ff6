// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// impl_random_probability.go - implementation of RandomProbability(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): every admissible pair is included independently with probability p.
//   - Directed: every ordered pair (i,j); (i,i) only when self-loops are enabled.
//   - Undirected: only i > j (each unordered pair tested once), plus (i,i) when self-loops are enabled.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Weighted target ⇒ min_weight < max_weight (else ErrBadWeightRange).
//   - WithSelfLoops(true) requires g.Looped() (else ErrUnsupportedGraphMode).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials, by definition of the model.
//   - Space: O(n) for the vertex batch; candidates are generated and filtered lazily.
//
// Determinism:
//   - Trial order: i asc, then j asc. One Float64() per considered pair; include iff draw < p;
//     one weight draw follows each accepted pair on weighted graphs.

package builder

import (
	"github.com/katalvlaran/lvgen/core"
)

// RandomProbability returns a Constructor that samples G(n,p) on top of g.
func RandomProbability(n int, p float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		// 1) Validate parameters (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodRandomProbability, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomProbability, "p", p); err != nil {
			return err
		}
		weighted := g.Weighted()
		if err := validateWeightRange(methodRandomProbability, weighted, cfg); err != nil {
			return err
		}
		if err := validateLoops(methodRandomProbability, g, cfg); err != nil {
			return err
		}

		// 2) Stream + node set.
		s := newStream(cfg)
		if err := addIndexedVertices(methodRandomProbability, g, cfg, n); err != nil {
			return err
		}

		// 3) Generate-and-filter over the fixed pair order.
		directed := g.Directed()
		pairs := func(yield func(core.EdgeSpec) bool) {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if !admissiblePair(i, j, directed, cfg.loops) {
						continue
					}
					if s.Float64() >= p {
						continue
					}
					if !yield(edgeSpec(cfg, i, j, drawWeight(weighted, cfg, s))) {
						return
					}
				}
			}
		}

		return addCandidates(methodRandomProbability, g, pairs)
	}
}

// admissiblePair reports whether (i,j) is tested at all under the directedness/loop policy.
func admissiblePair(i, j int, directed, loops bool) bool {
	if i == j {
		return loops
	}

	return directed || i > j
}
