// SPDX-License-Identifier: MIT
//
// File: summary.go
// Role: Structural summary of a generated graph: counts, degrees, components, hop distances.
// Determinism:
//   - Distance sources are the first MaxPathSources vertices in sorted order.
// Concurrency:
//   - Read-only on g; honors ctx cancellation between breadth-first walks.

package export

import (
	"cmp"
	"context"
	"slices"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvgen/core"
)

// MaxPathSources bounds the number of breadth-first walks Summarize performs.
const MaxPathSources = 64

// Summary describes the shape of a graph.
type Summary struct {
	Directed bool `json:"directed"`
	Weighted bool `json:"weighted"`

	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
	Loops    int `json:"loops"`

	// Degree counts every incident edge end; a self-loop adds two.
	MinDegree  int     `json:"min_degree"`
	MaxDegree  int     `json:"max_degree"`
	MeanDegree float64 `json:"mean_degree"`

	// Directed graphs only.
	MaxInDegree  int `json:"max_in_degree,omitempty"`
	MaxOutDegree int `json:"max_out_degree,omitempty"`

	// Components are weakly connected for directed graphs.
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`

	// Hop distances along edge direction, over reachable pairs from the sampled sources.
	Diameter     int     `json:"diameter"`
	MeanDistance float64 `json:"mean_distance"`
}

// Summarize computes a Summary of g. It returns ctx.Err() if cancelled mid-way.
//
// Complexity:
//   - O(V log V + E) for counts and components, plus O(min(V, MaxPathSources)·(V+E)) for distances.
func Summarize(ctx context.Context, g *core.Graph) (*Summary, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	stats := g.Stats()
	s := &Summary{
		Directed: stats.Directed,
		Weighted: stats.Weighted,
		Vertices: stats.VertexCount,
		Edges:    stats.EdgeCount,
		Loops:    stats.LoopCount,
	}
	if s.Vertices == 0 {
		return s, nil
	}

	degreeStats(g, s)

	comps := components(g)
	s.Components = len(comps)
	s.LargestComponent = len(comps[0])

	if err := distanceStats(ctx, g, s); err != nil {
		return nil, err
	}

	return s, nil
}

// LargestComponent returns the induced subgraph on the largest (weakly) connected
// component of g. Ties go to the component holding the smallest vertex ID.
func LargestComponent(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	comps := components(g)
	if len(comps) == 0 {
		return core.InducedSubgraph(g, nil), nil
	}
	keep := make(map[string]bool, len(comps[0]))
	for _, id := range comps[0] {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}

// components returns vertex-ID components of g, largest first; each component is
// sorted and ties are ordered by their smallest ID.
func components(g *core.Graph) [][]string {
	view := newGonumView(g)
	raw := topo.ConnectedComponents(view.undirected)

	out := make([][]string, 0, len(raw))
	for _, comp := range raw {
		ids := make([]string, len(comp))
		for i, n := range comp {
			ids[i] = view.name(n)
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})

	return out
}

// degreeStats fills the degree fields of s from the per-vertex degree table.
func degreeStats(g *core.Graph, s *Summary) {
	s.MinDegree = -1
	var total int
	for _, d := range g.Degrees() {
		t := d.Total()
		total += t
		if s.MinDegree < 0 || t < s.MinDegree {
			s.MinDegree = t
		}
		s.MaxDegree = max(s.MaxDegree, t)
		s.MaxInDegree = max(s.MaxInDegree, d.In)
		s.MaxOutDegree = max(s.MaxOutDegree, d.Out)
	}
	s.MeanDegree = float64(total) / float64(s.Vertices)
}

// distanceStats walks from up to MaxPathSources vertices and records hop distances.
func distanceStats(ctx context.Context, g *core.Graph, s *Summary) error {
	sources := g.Vertices()
	if len(sources) > MaxPathSources {
		sources = sources[:MaxPathSources]
	}

	var pairs, sum int
	for _, src := range sources {
		depth, err := hopDepths(ctx, g, src)
		if err != nil {
			return err
		}
		for id, d := range depth {
			if id == src {
				continue
			}
			pairs++
			sum += d
			s.Diameter = max(s.Diameter, d)
		}
	}
	if pairs > 0 {
		s.MeanDistance = float64(sum) / float64(pairs)
	}

	return nil
}
