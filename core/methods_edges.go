// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge (strict), AddEdges (bulk merge), HasEdge, Edges, EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order (Edge.ID sequence asc).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muVert + muEdgeAdj write locks (bulk inserts may create vertices).
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST receive weight==0 (else ErrBadWeight) on both paths.
//   - AddEdge reports policy violations as errors; AddEdges silently skips candidates the
//     policy cannot hold (parallel edge without multi-edges, self-loop without loops).

package core

import (
	"iter"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates one new edge from→to, auto-creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock muVert then muEdgeAdj; ensure endpoints.
//  3. Check the multi-edge constraint.
//  4. Store the edge and link adjacency (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	addVertexLocked(g, from)
	addVertexLocked(g, to)

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	return insertEdgeLocked(g, from, to, weight).ID, nil
}

// AddEdges merges a sequence of edge candidates into the graph and reports how many were kept.
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks once for the whole batch.
//   - Stage 2: For each candidate: validate IDs and weight (hard errors), create missing endpoints,
//     then skip candidates the graph policy cannot hold (self-loop without loops, parallel edge
//     without multi-edges), otherwise insert.
//
// Behavior highlights:
//   - Deduplication is this method's job: generators may emit duplicate or mirrored candidates
//     and rely on the graph's policy to decide.
//   - Candidates are consumed lazily; the sequence is never materialized.
//   - The sequence MUST NOT call back into this graph (locks are held while it runs).
//
// Returns:
//   - int: number of edges inserted.
//   - error: ErrEmptyVertexID or ErrBadWeight; candidates consumed before the failure stay inserted.
//
// Complexity:
//   - Time O(k) amortized for k candidates, Space O(1) extra.
func (g *Graph) AddEdges(edges iter.Seq[EdgeSpec]) (int, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var added int
	for e := range edges {
		if e.From == "" || e.To == "" {
			return added, ErrEmptyVertexID
		}
		if !g.weighted && e.Weight != 0 {
			return added, ErrBadWeight
		}

		addVertexLocked(g, e.From)
		addVertexLocked(g, e.To)

		if e.From == e.To && !g.allowLoops {
			continue
		}
		if !g.allowMulti && len(g.adjacencyList[e.From][e.To]) > 0 {
			continue
		}

		insertEdgeLocked(g, e.From, e.To, e.Weight)
		added++
	}

	return added, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works both ways for undirected graphs because adjacency is mirrored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges in insertion order.
// The returned pointers refer to live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// insertEdgeLocked stores a validated edge and links adjacency. Caller holds both write locks.
func insertEdgeLocked(g *Graph, from, to string, weight int64) *Edge {
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return e
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal sequence).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq recovers the numeric sequence from an ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}
