// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: Graph writers (DOT, JSON, edge list) and the JSON reader.
// Determinism:
//   - Output depends only on graph content: vertices sorted, edges in insertion order.

package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/lvgen/core"
)

// Format names a serialization.
type Format string

// Supported formats.
const (
	FormatDOT      Format = "dot"
	FormatJSON     Format = "json"
	FormatEdgeList Format = "edgelist"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatDOT, FormatJSON, FormatEdgeList}

// ParseFormat resolves a case-insensitive format name; empty means FormatEdgeList.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatEdgeList, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
	return f, nil
}

// Write serializes g to w in format f. name is used by DOT only.
func Write(w io.Writer, g *core.Graph, f Format, name string) error {
	switch f {
	case FormatDOT:
		return WriteDOT(w, g, name)
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatEdgeList:
		return WriteEdgeList(w, g)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// WriteDOT writes g as a Graphviz digraph or graph named name.
// Weighted graphs carry a weight attribute on every edge.
func WriteDOT(w io.Writer, g *core.Graph, name string) error {
	if g == nil {
		return ErrNilGraph
	}
	b, err := dot.MarshalMulti(newGonumView(g).lines, name, "", "\t")
	if err != nil {
		return fmt.Errorf("export: marshal dot: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// jsonGraph is the JSON document layout.
type jsonGraph struct {
	Directed bool       `json:"directed"`
	Weighted bool       `json:"weighted"`
	Loops    bool       `json:"loops"`
	Multi    bool       `json:"multi"`
	Vertices []string   `json:"vertices"`
	Edges    []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight,omitempty"`
}

// WriteJSON writes g as an indented JSON document.
func WriteJSON(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	doc := jsonGraph{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Loops:    g.Looped(),
		Multi:    g.Multigraph(),
		Vertices: g.Vertices(),
		Edges:    make([]jsonEdge, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// ReadJSON rebuilds a graph from a WriteJSON document. The document's edge IDs are
// not restored: edges are renumbered "e1".."ek" in document order. Endpoints, weights
// and edge order survive a round trip; IDs survive only when they were already
// contiguous from "e1", which is not the case after LargestComponent.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var doc jsonGraph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("export: decode json: %w", err)
	}

	opts := []core.GraphOption{core.WithDirected(doc.Directed)}
	if doc.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if doc.Loops {
		opts = append(opts, core.WithLoops())
	}
	if doc.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	if err := g.AddVertices(doc.Vertices...); err != nil {
		return nil, fmt.Errorf("export: vertices: %w", err)
	}
	specs := func(yield func(core.EdgeSpec) bool) {
		for _, e := range doc.Edges {
			if !yield(core.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}) {
				return
			}
		}
	}
	if _, err := g.AddEdges(specs); err != nil {
		return nil, fmt.Errorf("export: edges: %w", err)
	}

	return g, nil
}

// WriteEdgeList writes one "from to" line per edge, with a third weight column
// on weighted graphs.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		if weighted {
			fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
	}
	return bw.Flush()
}
