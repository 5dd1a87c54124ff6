// Package export serializes generated graphs and summarizes their structure.
//
// Writers:
//
//	WriteDOT(w, g, name)   // Graphviz DOT via gonum's encoding/dot
//	WriteJSON(w, g)        // flags, sorted vertices, edges in insertion order
//	WriteEdgeList(w, g)    // "from to [weight]" per line
//	Write(w, g, f, name)   // dispatch on Format
//
// ReadJSON rebuilds a core.Graph from WriteJSON output.
//
// Summarize reports counts, degree statistics, connected components (gonum topo)
// and hop distances sampled by breadth-first search. LargestComponent extracts
// the biggest connected component as an induced subgraph.
//
// The package never logs and never mutates its input graph.
package export
