package bfs

import (
	"fmt"

	"github.com/katalvlaran/procmesh/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start over the current
// adjacency, applying any number of functional Options.
func BFS(g *core.Graph, start *core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil || g.IndexOf(start) < 0 {
		return nil, ErrStartNotFound
	}

	n := g.NodeCount()
	w := &walker{
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]*core.Node, 0, n),
			Depth:  make(map[*core.Node]int, n),
			Parent: make(map[*core.Node]*core.Node, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d and records its parent.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = parent
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node.Pos, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range item.node.Neighbors() {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			if !w.opts.FilterNeighbor(item.node, nb) {
				continue
			}
			w.enqueue(nb, next, item.node)
		}
	}

	return nil
}
