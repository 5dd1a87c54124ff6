// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Breadth-first hop distances over core.Graph successors.
// Policy:
//   - Weights are ignored; every edge counts as one hop.
//   - Directed graphs are walked along edge direction only.

package export

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvgen/core"
)

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	ctx   context.Context
	queue []queueItem
	depth map[string]int
}

// hopDepths returns the hop distance from start to every reachable vertex, start included at 0.
func hopDepths(ctx context.Context, g *core.Graph, start string) (map[string]int, error) {
	w := &walker{
		graph: g,
		ctx:   ctx,
		queue: make([]queueItem, 0, 16),
		depth: make(map[string]int),
	}
	w.enqueue(start, 0)

	return w.depth, w.loop()
}

// enqueue records id at depth d and appends it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		next, err := w.graph.Successors(item.id)
		if err != nil {
			return fmt.Errorf("export: successors of %q: %w", item.id, err)
		}
		for _, nbr := range next {
			if _, seen := w.depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
