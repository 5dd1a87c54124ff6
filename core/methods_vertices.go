// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries (AddVertex, AddVertices, HasVertex, Vertices, VertexCount, Degrees).
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
//
// AI-Hints (file):
//   - AddVertices is the bulk form used by generators; it is idempotent per ID like AddVertex.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	return g.AddVertices(id)
}

// AddVertices inserts every missing vertex of ids in one critical section.
//
// Implementation:
//   - Stage 1: Validate all IDs before touching the catalog (empty ID ⇒ ErrEmptyVertexID, no partial insert).
//   - Stage 2: Under muVert and muEdgeAdj write locks, register missing vertices and bootstrap adjacency buckets.
//
// Behavior highlights:
//   - Idempotent: IDs already present (or repeated inside ids) are no-ops.
//
// Complexity:
//   - Time O(len(ids)) amortized, Space O(len(ids)).
func (g *Graph) AddVertices(ids ...string) error {
	var id string
	for _, id = range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, id = range ids {
		addVertexLocked(g, id)
	}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
//
// AI-Hints:
//   - Decimal IDs sort as strings ("0","1","10","2"); compare as sets when the order does not matter.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VertexDegree holds the degree components of one vertex.
type VertexDegree struct {
	In         int // incoming directed edges
	Out        int // outgoing directed edges
	Undirected int // undirected edge ends
}

// Total is the number of incident edge ends.
func (d VertexDegree) Total() int { return d.In + d.Out + d.Undirected }

// Degrees returns the degree components of every vertex in one pass over the edges.
//
// Policy:
//   - Directed self-loop (id -> id) contributes +1 to both In and Out.
//   - Undirected self-loop contributes +2 to Undirected.
//   - Isolated vertices are present with a zero VertexDegree.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Degrees() map[string]VertexDegree {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string]VertexDegree, len(g.vertices))
	for id := range g.vertices {
		out[id] = VertexDegree{}
	}
	for _, e := range g.edges {
		from := out[e.From]
		if e.Directed {
			from.Out++
		} else {
			from.Undirected++
		}
		out[e.From] = from

		to := out[e.To]
		if e.Directed {
			to.In++
		} else {
			to.Undirected++
		}
		out[e.To] = to
	}

	return out
}

// addVertexLocked registers id when missing. Caller holds muVert and muEdgeAdj write locks.
func addVertexLocked(g *Graph, id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}
