// Package core provides the thread-safe in-memory Graph that lvgen generators
// write into.
//
// The Graph G = (V,E) comes in four variants selected at construction:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//
// and two insertion policies:
//
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage uses nested maps, adjacencyList[from][to][edgeID] = struct{}{}, with
// undirected edges mirrored, and a monotonic edge ID sequence ("e1", "e2", …).
// Two sync.RWMutex values (muVert for vertices, muEdgeAdj for edges+adjacency)
// are always taken in that order.
//
// Insertion paths:
//
//	AddVertex(id) / AddVertices(ids...)        // idempotent
//	AddEdge(from, to, weight)                  // strict: policy violations are errors
//	AddEdges(seq iter.Seq[EdgeSpec]) (n, err)  // merge: policy violations are skipped
//
// Queries:
//
//	Vertices()      // sorted IDs
//	Edges()         // insertion order
//	Successors(id)  // sorted, unique
//	Neighbors(id)   // incident edges under the directed/undirected policy
//	Degrees()       // in, out, undirected components of every vertex
//	Stats()         // flags + counts snapshot
//
// Errors are package-level sentinels; branch on them with errors.Is.
package core
