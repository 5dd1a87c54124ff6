// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n0, n, m) and Clique(n).
//
// Canonical model (Barabási–Albert 1999):
//   - Seed: complete graph K_{n0} on nodes 0..n0-1 (directed targets get i → j for i < j).
//   - Growth: nodes n0..n-1 arrive one at a time; each attaches to m DISTINCT existing nodes.
//     Node n0 picks its partners uniformly among the seed nodes. Every later node picks
//     partner u with probability degree(u) / Σ degree, sampling without replacement.
//   - Degrees count every incident edge (in + out) and are updated after each arrival.
//
// Contract:
//   - n0 ≥ 1, n ≥ n0, 0 ≤ m ≤ n0 (else ErrTooFewVertices).
//   - Weighted target ⇒ min_weight < max_weight (else ErrBadWeightRange).
//   - The whole plan is computed before the graph is touched: an ErrGeneration
//     (no degree mass left while partners are still needed) leaves g unchanged.
//   - Edge count (before graph dedup): n0·(n0-1)/2 + (n-n0)·m.
//
// Complexity:
//   - Time: O(n0² + (n-n0)·m²) expected; every preferential draw is one uniform pick from
//     the endpoint pool (one entry per edge end), redrawn when it repeats a partner.
//   - Space: O(n + E).
//
// Determinism:
//   - Draw order: clique weights (i asc, j asc), then per arriving node its partner draws
//     followed by one weight draw per partner on weighted graphs.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvgen/core"
	"github.com/katalvlaran/lvgen/stream"
)

// BarabasiAlbert returns a Constructor that grows a preferential-attachment graph of n nodes
// from a seed clique of n0 nodes, each arriving node bringing m edges.
func BarabasiAlbert(n0, n, m int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodBarabasiAlbert, "n0", n0, MinVertices); err != nil {
			return err
		}
		if err := validateMin(methodBarabasiAlbert, "n", n, n0); err != nil {
			return err
		}
		if err := validateMin(methodBarabasiAlbert, "m", m, 0); err != nil {
			return err
		}
		if m > n0 {
			return fmt.Errorf("%s: m=%d exceeds n0=%d: %w", methodBarabasiAlbert, m, n0, ErrTooFewVertices)
		}
		weighted := g.Weighted()
		if err := validateWeightRange(methodBarabasiAlbert, weighted, cfg); err != nil {
			return err
		}

		s := newStream(cfg)
		plan, err := planBarabasiAlbert(cfg, s, n0, n, m, weighted)
		if err != nil {
			return err
		}

		if err = addIndexedVertices(methodBarabasiAlbert, g, cfg, n); err != nil {
			return err
		}

		return addCandidates(methodBarabasiAlbert, g, slices.Values(plan))
	}
}

// Clique returns a Constructor that adds the complete graph K_n on idFn(0..n-1).
// Directed targets receive one edge i → j for every i < j.
func Clique(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if err := validateMin(methodClique, "n", n, MinVertices); err != nil {
			return err
		}
		weighted := g.Weighted()
		if err := validateWeightRange(methodClique, weighted, cfg); err != nil {
			return err
		}

		s := newStream(cfg)
		plan := make([]core.EdgeSpec, 0, n*(n-1)/2)
		plan = appendClique(plan, cfg, s, n, weighted)

		if err := addIndexedVertices(methodClique, g, cfg, n); err != nil {
			return err
		}

		return addCandidates(methodClique, g, slices.Values(plan))
	}
}

// appendClique appends the K_n edges in (i asc, j asc) order.
func appendClique(dst []core.EdgeSpec, cfg builderConfig, s *stream.Stream, n int, weighted bool) []core.EdgeSpec {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dst = append(dst, edgeSpec(cfg, i, j, drawWeight(weighted, cfg, s)))
		}
	}

	return dst
}

// planBarabasiAlbert computes every edge of the model without touching a graph.
func planBarabasiAlbert(cfg builderConfig, s *stream.Stream, n0, n, m int, weighted bool) ([]core.EdgeSpec, error) {
	plan := make([]core.EdgeSpec, 0, n0*(n0-1)/2+(n-n0)*m)
	plan = appendClique(plan, cfg, s, n0, weighted)

	pool := newAttachmentPool(n, len(plan), m)
	for u := 0; u < n0; u++ {
		for v := u + 1; v < n0; v++ {
			pool.link(u, v)
		}
	}

	var (
		partners []int
		err      error
	)
	for v := n0; v < n; v++ {
		if v == n0 {
			partners = pickUniform(s, n0, m)
		} else {
			partners, err = pickPreferential(s, pool, m)
			if err != nil {
				return nil, fmt.Errorf("%s: attaching node %d: %w", methodBarabasiAlbert, v, err)
			}
		}
		for _, u := range partners {
			plan = append(plan, edgeSpec(cfg, v, u, drawWeight(weighted, cfg, s)))
			pool.link(v, u)
		}
	}

	return plan, nil
}

// attachmentPool tracks degrees as a flat list of edge ends: node u appears degree(u)
// times in ends, so a uniform pick from ends is a degree-proportional pick of a node.
type attachmentPool struct {
	ends   []int
	degree []int
	active int // nodes with degree > 0
}

// newAttachmentPool sizes a pool for n nodes, the clique edges and m edges per arrival.
func newAttachmentPool(n, cliqueEdges, m int) *attachmentPool {
	return &attachmentPool{
		ends:   make([]int, 0, 2*(cliqueEdges+n*m)),
		degree: make([]int, n),
	}
}

// link records one edge between u and v.
func (p *attachmentPool) link(u, v int) {
	p.addEnd(u)
	p.addEnd(v)
}

func (p *attachmentPool) addEnd(u int) {
	if p.degree[u] == 0 {
		p.active++
	}
	p.degree[u]++
	p.ends = append(p.ends, u)
}

// pickUniform returns m distinct indices from [0,n) via a partial Fisher–Yates shuffle.
// Caller guarantees 0 ≤ m ≤ n.
func pickUniform(s *stream.Stream, n, m int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < m; i++ {
		j := i + s.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:m]
}

// pickPreferential samples m distinct nodes of pool without replacement, node u
// weighted by its degree. A pick that repeats an earlier partner is redrawn, which
// is sampling from the remaining degree mass. It fails when fewer than m nodes
// carry any degree.
func pickPreferential(s *stream.Stream, pool *attachmentPool, m int) ([]int, error) {
	if pool.active < m {
		return nil, fmt.Errorf("need %d partners, only %d nodes carry degree: %w",
			m, pool.active, ErrGeneration)
	}

	out := make([]int, 0, m)
	for len(out) < m {
		u := pool.ends[s.Intn(len(pool.ends))]
		if slices.Contains(out, u) {
			continue
		}
		out = append(out, u)
	}

	return out, nil
}
