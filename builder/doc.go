// Package builder generates synthetic graphs under classical random-graph models,
// with reproducible, seeded randomness.
//
// Models (one Constructor factory each):
//
//   - RandomEdges(n, m)          Erdős–Rényi by count: m independent endpoint trials.
//   - RandomProbability(n, p)    Erdős–Rényi G(n,p): one Bernoulli trial per admissible pair.
//   - Circulant(n, k)            ring lattice: i → i+1..i+k (mod n), deterministic.
//   - NewmanWatts(n, k, phi)     small world: Circulant plus at most one shortcut per node.
//   - BarabasiAlbert(n0, n, m)   preferential attachment grown from a seed clique.
//
// Building blocks used by the composite models are exported too:
// Clique(n) and AddShortcuts(n, phi).
//
// Configuration primitives:
//
//   - BuilderOption: WithSeed, WithWeightRange, WithSelfLoops, WithIDScheme.
//   - BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies cons.
//   - Apply(g, bopts, cons...) layers cons onto an existing Graph.
//
// Guarantees:
//
//   - Every constructor call opens its own stream from the configured seed and
//     discards it on return; unseeded calls use a clock-derived seed.
//   - Configuration errors (ErrConfiguration and its refinements) are reported
//     before any draw or mutation, so the graph is left untouched.
//   - Edge candidates are produced lazily and merged by the Graph, which owns
//     deduplication and loop policy.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.NewmanWatts(100, 2, 0.1),
//	)
package builder
