// Package builder provides internal helpers shared by the generators.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap graph errors with the method tag.
//   - Laziness: edge candidates are iter.Seq values consumed by Graph.AddEdges.
package builder

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/core"
)

// addIndexedVertices inserts idFn(0..n-1) into g in one bulk call (idempotent in core).
// Complexity: O(n) time and space.
func addIndexedVertices(method string, g Graph, cfg builderConfig, n int) error {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}
	if err := g.AddVertices(ids...); err != nil {
		return fmt.Errorf("%s: AddVertices(n=%d): %w", method, n, err)
	}

	return nil
}

// addCandidates hands a candidate sequence to g and wraps any failure with the method tag.
func addCandidates(method string, g Graph, seq iter.Seq[core.EdgeSpec]) error {
	if _, err := g.AddEdges(seq); err != nil {
		return fmt.Errorf("%s: AddEdges: %w", method, err)
	}

	return nil
}
