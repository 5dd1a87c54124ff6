// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: Adapter from core.Graph to a gonum multigraph.
// Determinism:
//   - Node IDs are positions in the sorted vertex list; line IDs are positions in Edges().
// AI-HINT (file):
//   - multi graphs are used for both modes so parallel edges and self-loops survive.

package export

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/lvgen/core"
)

// vertexNode is a gonum node that keeps the core vertex ID as its DOT name.
type vertexNode struct {
	id   int64
	name string
}

// ID implements graph.Node.
func (n vertexNode) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n vertexNode) DOTID() string { return n.name }

// edgeLine is a gonum line carrying the core edge weight as a DOT attribute.
type edgeLine struct {
	from, to vertexNode
	uid      int64
	weight   int64
	weighted bool
}

// From implements graph.Line.
func (l edgeLine) From() graph.Node { return l.from }

// To implements graph.Line.
func (l edgeLine) To() graph.Node { return l.to }

// ReversedLine implements graph.Line.
func (l edgeLine) ReversedLine() graph.Line {
	l.from, l.to = l.to, l.from
	return l
}

// ID implements graph.Line.
func (l edgeLine) ID() int64 { return l.uid }

// Attributes implements encoding.Attributer; unweighted lines carry none.
func (l edgeLine) Attributes() []encoding.Attribute {
	if !l.weighted {
		return nil
	}
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatInt(l.weight, 10)}}
}

// lineGraph is the mutable surface shared by multi.DirectedGraph and multi.UndirectedGraph.
type lineGraph interface {
	graph.Multigraph
	AddNode(graph.Node)
	SetLine(graph.Line)
}

// gonumView holds the multigraph copy of g and its undirected reading.
type gonumView struct {
	lines      lineGraph
	undirected graph.Undirected
	names      []string // node ID -> core vertex ID
}

// newGonumView copies g into a gonum multigraph.
// Complexity: O(V log V + E).
func newGonumView(g *core.Graph) *gonumView {
	v := &gonumView{names: g.Vertices()}
	if g.Directed() {
		dg := multi.NewDirectedGraph()
		v.lines, v.undirected = dg, graph.Undirect{G: dg}
	} else {
		ug := multi.NewUndirectedGraph()
		v.lines, v.undirected = ug, ug
	}

	index := make(map[string]vertexNode, len(v.names))
	for i, name := range v.names {
		n := vertexNode{id: int64(i), name: name}
		index[name] = n
		v.lines.AddNode(n)
	}

	weighted := g.Weighted()
	for i, e := range g.Edges() {
		v.lines.SetLine(edgeLine{
			from:     index[e.From],
			to:       index[e.To],
			uid:      int64(i),
			weight:   e.Weight,
			weighted: weighted,
		})
	}

	return v
}

// name maps a gonum node back to the core vertex ID.
func (v *gonumView) name(n graph.Node) string {
	return v.names[n.ID()]
}
