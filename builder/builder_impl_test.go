// Package builder_test contains functional tests for the random-graph constructors,
// verifying node and edge counts, admissible pair sets, weight ranges, determinism
// and the untouched-on-error guarantee.
package builder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvgen/builder"
	"github.com/katalvlaran/lvgen/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// unordered returns the key with endpoints in lexical order.
func unordered(u, v string) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{U: u, V: v}
}

// edgeList returns the endpoints of every edge in insertion order.
func edgeList(g *core.Graph) []edgeKey {
	out := make([]edgeKey, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, edgeKey{U: e.From, V: e.To})
	}
	return out
}

// idx parses a decimal vertex ID back to its index.
func idx(t *testing.T, id string) int {
	t.Helper()
	i, err := strconv.Atoi(id)
	require.NoError(t, err)
	return i
}

// digraph is a directed graph that keeps every candidate (loops and parallel edges).
func digraph(extra ...core.GraphOption) []core.GraphOption {
	return append([]core.GraphOption{core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()}, extra...)
}

func TestCirculant_UndirectedC5(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Circulant(5, 1))
	require.NoError(t, err)

	require.Equal(t, []string{"0", "1", "2", "3", "4"}, g.Vertices())
	got := make(map[edgeKey]bool)
	for _, e := range edgeList(g) {
		got[unordered(e.U, e.V)] = true
	}
	want := map[edgeKey]bool{
		unordered("0", "1"): true,
		unordered("1", "2"): true,
		unordered("2", "3"): true,
		unordered("3", "4"): true,
		unordered("4", "0"): true,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 5, g.EdgeCount())
}

func TestCirculant_DirectedShape(t *testing.T) {
	const n, k = 11, 3
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Circulant(n, k))
	require.NoError(t, err)

	require.Equal(t, n, g.VertexCount())
	require.Equal(t, n*k, g.EdgeCount())
	for _, e := range edgeList(g) {
		d := (idx(t, e.V) - idx(t, e.U) + n) % n
		assert.True(t, d >= 1 && d <= k, "edge %v has offset %d", e, d)
	}
}

func TestCirculant_UndirectedCountIsNK(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Circulant(9, 4))
	require.NoError(t, err)
	assert.Equal(t, 36, g.EdgeCount())
}

func TestCirculant_Deterministic(t *testing.T) {
	gopts := []core.GraphOption{core.WithDirected(true)}
	g1, err := builder.BuildGraph(gopts, nil, builder.Circulant(8, 2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(gopts, nil, builder.Circulant(8, 2))
	require.NoError(t, err)

	assert.Equal(t, g1.Vertices(), g2.Vertices())
	assert.Equal(t, edgeList(g1), edgeList(g2))
}

func TestCirculant_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		n, k int
	}{
		{"n equals 2k", 4, 2},
		{"n below 2k", 3, 2},
		{"negative k", 5, -1},
		{"zero n", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := builder.Apply(g, nil, builder.Circulant(tc.n, tc.k))
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
			require.ErrorIs(t, err, builder.ErrConfiguration)
			assert.Zero(t, g.VertexCount())
		})
	}
}

func TestCirculant_WeightedDegenerateRange(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	err := builder.Apply(g, []builder.BuilderOption{builder.WithSeed(42)}, builder.Circulant(6, 2))

	require.ErrorIs(t, err, builder.ErrConfiguration)
	require.ErrorIs(t, err, builder.ErrBadWeightRange)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestCirculant_WeightedUsesMinWeight(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightRange(3, 9)},
		builder.Circulant(7, 2),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(3), e.Weight)
	}
}

func TestRandomEdges_LoopsKeepEveryTrial(t *testing.T) {
	const n, m = 6, 200
	g, err := builder.BuildGraph(digraph(),
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithSelfLoops(true)},
		builder.RandomEdges(n, m))
	require.NoError(t, err)

	assert.Equal(t, n, g.VertexCount())
	assert.Equal(t, m, g.EdgeCount())
}

func TestRandomEdges_NoLoopsDropsSelfPairs(t *testing.T) {
	const n, m = 4, 300
	g, err := builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomEdges(n, m))
	require.NoError(t, err)

	assert.LessOrEqual(t, g.EdgeCount(), m)
	// With n=4 a quarter of the trials collide; 300 trials without a single drop is not plausible.
	assert.Less(t, g.EdgeCount(), m)
	for _, e := range edgeList(g) {
		assert.NotEqual(t, e.U, e.V)
	}
}

func TestRandomEdges_ZeroEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RandomEdges(3, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestRandomEdges_Errors(t *testing.T) {
	g := core.NewGraph()

	err := builder.Apply(g, nil, builder.RandomEdges(0, 1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	err = builder.Apply(g, nil, builder.RandomEdges(3, -1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	err = builder.Apply(g, []builder.BuilderOption{builder.WithSelfLoops(true)}, builder.RandomEdges(3, 3))
	require.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)
	require.ErrorIs(t, err, builder.ErrConfiguration)

	assert.Zero(t, g.VertexCount())
}

func TestRandomEdges_WeightsInRange(t *testing.T) {
	const lo, hi = 5, 12
	g, err := builder.BuildGraph(digraph(core.WithWeighted()),
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightRange(lo, hi)},
		builder.RandomEdges(10, 500))
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())

	seen := make(map[int64]bool)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(lo))
		assert.Less(t, e.Weight, int64(hi))
		seen[e.Weight] = true
	}
	assert.Len(t, seen, hi-lo)
}

func TestWeights_FullInt64Range(t *testing.T) {
	bopts := []builder.BuilderOption{builder.WithSeed(21), builder.WithSelfLoops(true),
		builder.WithWeightRange(math.MinInt64, math.MaxInt64)}

	var g *core.Graph
	var err error
	require.NotPanics(t, func() {
		g, err = builder.BuildGraph(digraph(core.WithWeighted()), bopts,
			builder.RandomEdges(5, 5))
	})
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Less(t, e.Weight, int64(math.MaxInt64))
	}

	require.NotPanics(t, func() {
		_, err = builder.BuildGraph(digraph(core.WithWeighted()), bopts, builder.BarabasiAlbert(3, 10, 2))
	})
	require.NoError(t, err)
}

func TestRandomEdges_SeedReproducible(t *testing.T) {
	bopts := []builder.BuilderOption{builder.WithSeed(99)}
	g1, err := builder.BuildGraph(digraph(), bopts, builder.RandomEdges(20, 50))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(digraph(), bopts, builder.RandomEdges(20, 50))
	require.NoError(t, err)

	assert.Equal(t, edgeList(g1), edgeList(g2))
}

func TestRandomProbability_UndirectedPairs(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges(), core.WithLoops()},
		[]builder.BuilderOption{builder.WithSeed(4)},
		builder.RandomProbability(25, 0.4))
	require.NoError(t, err)

	seen := make(map[edgeKey]bool)
	for _, e := range edgeList(g) {
		assert.NotEqual(t, e.U, e.V, "self-pair without WithSelfLoops")
		k := unordered(e.U, e.V)
		assert.False(t, seen[k], "pair %v tested twice", k)
		seen[k] = true
	}
}

func TestRandomProbability_Extremes(t *testing.T) {
	const n = 7

	g, err := builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomProbability(n, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, n, g.VertexCount())

	g, err = builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomProbability(n, 1))
	require.NoError(t, err)
	assert.Equal(t, n*(n-1), g.EdgeCount())

	g, err = builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(5), builder.WithSelfLoops(true)},
		builder.RandomProbability(n, 1))
	require.NoError(t, err)
	assert.Equal(t, n*n, g.EdgeCount())

	g, err = builder.BuildGraph([]core.GraphOption{core.WithLoops()},
		[]builder.BuilderOption{builder.WithSelfLoops(true)},
		builder.RandomProbability(n, 1))
	require.NoError(t, err)
	assert.Equal(t, n*(n-1)/2+n, g.EdgeCount())
}

func TestRandomProbability_InvalidProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		g := core.NewGraph()
		err := builder.Apply(g, nil, builder.RandomProbability(5, p))
		require.ErrorIs(t, err, builder.ErrInvalidProbability, "p=%v", p)
		require.ErrorIs(t, err, builder.ErrConfiguration)
		assert.Zero(t, g.VertexCount())
	}
}

func TestRandomProbability_WeightedNeedsRange(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	err := builder.Apply(g, nil, builder.RandomProbability(5, 0.5))
	require.ErrorIs(t, err, builder.ErrBadWeightRange)

	err = builder.Apply(g, []builder.BuilderOption{builder.WithWeightRange(1, 4), builder.WithSeed(6)},
		builder.RandomProbability(12, 0.5))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.Less(t, e.Weight, int64(4))
	}
}

func TestRandomProbability_UnseededDiverges(t *testing.T) {
	g1, err := builder.BuildGraph(nil, nil, builder.RandomProbability(40, 0.5))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, nil, builder.RandomProbability(40, 0.5))
	require.NoError(t, err)

	assert.NotEqual(t, edgeList(g1), edgeList(g2))
}

func TestNewmanWatts_ContainsCirculantBase(t *testing.T) {
	const n, k = 30, 2
	bopts := []builder.BuilderOption{builder.WithSeed(7)}

	base, err := builder.BuildGraph(digraph(), bopts, builder.Circulant(n, k))
	require.NoError(t, err)
	sw, err := builder.BuildGraph(digraph(), bopts, builder.NewmanWatts(n, k, 0.3))
	require.NoError(t, err)

	for _, e := range edgeList(base) {
		assert.True(t, sw.HasEdge(e.U, e.V), "missing lattice edge %v", e)
	}
	extra := sw.EdgeCount() - base.EdgeCount()
	assert.GreaterOrEqual(t, extra, 0)
	assert.LessOrEqual(t, extra, n)
	assert.Equal(t, base.Vertices(), sw.Vertices())
}

func TestNewmanWatts_PhiExtremes(t *testing.T) {
	const n, k = 10, 1

	g, err := builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(8)}, builder.NewmanWatts(n, k, 0))
	require.NoError(t, err)
	assert.Equal(t, n*k, g.EdgeCount())

	g, err = builder.BuildGraph(digraph(), []builder.BuilderOption{builder.WithSeed(8)}, builder.NewmanWatts(n, k, 1))
	require.NoError(t, err)
	assert.Equal(t, n*k+n, g.EdgeCount())
}

func TestNewmanWatts_ErrorsLeaveGraphUntouched(t *testing.T) {
	g := core.NewGraph()

	err := builder.Apply(g, nil, builder.NewmanWatts(10, 2, 1.1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	err = builder.Apply(g, nil, builder.NewmanWatts(4, 2, 0.5))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	assert.Zero(t, g.VertexCount())
}

func TestNewmanWatts_WeightedShortcuts(t *testing.T) {
	g, err := builder.BuildGraph(digraph(core.WithWeighted()),
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithWeightRange(10, 20)},
		builder.NewmanWatts(12, 1, 1))
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 24)
	for i, e := range edges {
		if i < 12 {
			assert.Equal(t, int64(10), e.Weight, "lattice edge %s", e.ID)
			continue
		}
		assert.GreaterOrEqual(t, e.Weight, int64(10))
		assert.Less(t, e.Weight, int64(20))
	}
}

func TestAddShortcuts_PreservesContent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)

	err = builder.Apply(g, []builder.BuilderOption{builder.WithSeed(10)}, builder.AddShortcuts(5, 1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("0", "1"))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestNewmanWatts_ShortcutsStayOnGeneratedIndices(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, g.AddVertices("x", "y"))

	err := builder.Apply(g, []builder.BuilderOption{builder.WithSeed(12)}, builder.NewmanWatts(8, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 8+8, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.NotContains(t, []string{"x", "y"}, e.From)
		assert.NotContains(t, []string{"x", "y"}, e.To)
	}
}

func TestBarabasiAlbert_LargeGrowth(t *testing.T) {
	const n0, n, m = 5, 20000, 3
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(15)},
		builder.BarabasiAlbert(n0, n, m))
	require.NoError(t, err)
	assert.Equal(t, n, g.VertexCount())
	assert.Equal(t, n0*(n0-1)/2+(n-n0)*m, g.EdgeCount())
}

func TestBarabasiAlbert_EdgeCount(t *testing.T) {
	cases := []struct {
		name     string
		n0, n, m int
		directed bool
	}{
		{"seed only", 4, 4, 2, false},
		{"m zero", 3, 10, 0, false},
		{"single seed", 1, 15, 1, false},
		{"m equals n0", 3, 40, 3, false},
		{"typical", 5, 100, 2, false},
		{"directed", 4, 60, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)},
				[]builder.BuilderOption{builder.WithSeed(11)},
				builder.BarabasiAlbert(tc.n0, tc.n, tc.m))
			require.NoError(t, err)

			assert.Equal(t, tc.n, g.VertexCount())
			assert.Equal(t, tc.n0*(tc.n0-1)/2+(tc.n-tc.n0)*tc.m, g.EdgeCount())
		})
	}
}

func TestBarabasiAlbert_ArrivalsBringMEdges(t *testing.T) {
	const n0, n, m = 3, 50, 2
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(12)},
		builder.BarabasiAlbert(n0, n, m))
	require.NoError(t, err)

	for v := n0; v < n; v++ {
		succ, err := g.Successors(strconv.Itoa(v))
		require.NoError(t, err)
		require.Len(t, succ, m, "node %d", v)
		for _, u := range succ {
			assert.Less(t, idx(t, u), v, "node %d attached to a later node %s", v, u)
		}
	}
}

func TestBarabasiAlbert_Reproducible(t *testing.T) {
	bopts := []builder.BuilderOption{builder.WithSeed(13)}
	g1, err := builder.BuildGraph(nil, bopts, builder.BarabasiAlbert(4, 80, 3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, bopts, builder.BarabasiAlbert(4, 80, 3))
	require.NoError(t, err)

	assert.Equal(t, edgeList(g1), edgeList(g2))
}

func TestBarabasiAlbert_Errors(t *testing.T) {
	cases := []struct {
		name     string
		n0, n, m int
	}{
		{"m exceeds n0", 2, 10, 3},
		{"n below n0", 5, 4, 1},
		{"zero seed", 0, 10, 0},
		{"negative m", 3, 10, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := builder.Apply(g, nil, builder.BarabasiAlbert(tc.n0, tc.n, tc.m))
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
			require.ErrorIs(t, err, builder.ErrConfiguration)
			assert.Zero(t, g.VertexCount())
		})
	}
}

func TestBarabasiAlbert_WeightedRange(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	err := builder.Apply(g, nil, builder.BarabasiAlbert(3, 10, 2))
	require.ErrorIs(t, err, builder.ErrBadWeightRange)

	err = builder.Apply(g, []builder.BuilderOption{builder.WithSeed(14), builder.WithWeightRange(-3, 3)},
		builder.BarabasiAlbert(3, 30, 2))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(-3))
		assert.Less(t, e.Weight, int64(3))
	}
}

func TestClique(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Clique(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	for _, e := range edgeList(g) {
		assert.Less(t, idx(t, e.U), idx(t, e.V))
	}
}

func TestApply_LayersOnExistingGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertices("x", "y"))

	err := builder.Apply(g, []builder.BuilderOption{builder.WithSeed(15)},
		builder.Circulant(5, 1), builder.RandomEdges(5, 10))
	require.NoError(t, err)
	assert.True(t, g.HasVertex("x"))
	assert.True(t, g.HasVertex("y"))
	assert.Equal(t, 7, g.VertexCount())
	assert.GreaterOrEqual(t, g.EdgeCount(), 5)
}

func TestApply_NilInputs(t *testing.T) {
	err := builder.Apply(nil, nil, builder.Circulant(5, 1))
	require.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	_, err = builder.BuildGraph(nil, nil, builder.Circulant(5, 1), nil)
	require.ErrorIs(t, err, builder.ErrConfiguration)
}

func TestWithIDScheme_Hex(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.HexIDFn)},
		builder.Circulant(12, 1))
	require.NoError(t, err)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "0"))
}
