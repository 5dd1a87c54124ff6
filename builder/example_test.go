package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvgen/builder"
	"github.com/katalvlaran/lvgen/core"
)

// ExampleCirculant builds the 5-cycle C_5(1) on an undirected graph.
func ExampleCirculant() {
	g, err := builder.BuildGraph(nil, nil, builder.Circulant(5, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s - %s\n", e.From, e.To)
	}
	// Output:
	// 0 - 1
	// 1 - 2
	// 2 - 3
	// 3 - 4
	// 4 - 0
}

// ExampleBarabasiAlbert grows a reproducible preferential-attachment graph.
func ExampleBarabasiAlbert() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.BarabasiAlbert(3, 20, 2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())
	// Output:
	// vertices: 20 edges: 37
}
