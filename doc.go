// Package lvgen generates reproducible random graphs for tests, benchmarks
// and experiments with graph algorithms.
//
// Models:
//
//	Erdős–Rényi by count   builder.RandomEdges(n, m)
//	Erdős–Rényi G(n,p)     builder.RandomProbability(n, p)
//	Circulant lattice      builder.Circulant(n, k)
//	Small world            builder.NewmanWatts(n, k, phi)
//	Scale free             builder.BarabasiAlbert(n0, n, m)
//
// Every model is a builder.Constructor: it validates its parameters, opens its
// own seeded stream, and merges vertices and edge candidates into a graph.
//
// Subpackages:
//
//	core/     thread-safe Graph (directed/undirected × weighted/unweighted) with bulk merge
//	stream/   seeded random streams and child-seed derivation
//	builder/  the models, options (seed, weight range, self-loops, ID scheme) and sentinels
//	export/   DOT, JSON and edge-list writers, structural summaries
//	cmd/lvgen command-line front end (subcommand per model, TOML request files, batches)
//
// Quick example, a 5-cycle:
//
//	0───1
//	│    ╲
//	4     2
//	 ╲   ╱
//	  3─
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Circulant(5, 1))
//
//	go get github.com/katalvlaran/lvgen
package lvgen
