// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for the construction-time policy flags, plus Stats().
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters still take muVert.RLock for a consistent view.
// AI-HINT (file):
//   - Generators gate their behavior on Directed()/Weighted()/Looped() before emitting candidates.
//   - Stats() is an O(V+E) snapshot; rely on it for quick assertions and diagnostics.

package core

// GraphStats is a read-only snapshot of a Graph's policy flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int
	LoopCount   int // edges with From == To
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge/AddEdges reject non-zero weights with ErrBadWeight.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether edges of this graph are one-way.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Undirected graphs mirror every edge in adjacency, so Successors(u) contains v iff Successors(v) contains u.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) returns ErrLoopNotAllowed and AddEdges skips the candidate.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge rejects duplicates with ErrMultiEdgeNotAllowed and AddEdges skips them.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and count loops, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
