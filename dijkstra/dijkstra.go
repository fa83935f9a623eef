package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/procmesh/binheap"
	"github.com/katalvlaran/procmesh/core"
)

// entry is one heap item; stale entries carry a dist larger than the
// recorded best and are skipped.
type entry struct {
	node *core.Node
	dist float64
}

func byDist(e *entry) float64 { return e.dist }

// Dijkstra computes shortest distances from source to every node reachable
// over the current adjacency.
//
// Steps:
//  1. Validate inputs; Dist[source] = 0; push source.
//  2. Pop the closest entry; skip if stale or beyond MaxDistance.
//  3. Relax each neighbor: push on strict improvement.
//
// Errors: ErrNilGraph, ErrNilWeight, ErrSourceNotFound, ErrNegativeWeight
// (wrapped with the offending edge).
func Dijkstra(g *core.Graph, source *core.Node, w core.WeightFunc, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeight
	}
	if source == nil || g.IndexOf(source) < 0 {
		return nil, ErrSourceNotFound
	}

	res := &Result{
		Source: source,
		Dist:   map[*core.Node]float64{source: 0},
		Prev:   make(map[*core.Node]*core.Node),
	}
	settled := make(map[*core.Node]bool, g.NodeCount())

	pq := binheap.New(byDist)
	pq.Push(&entry{node: source, dist: 0})

	for pq.Size() > 0 {
		cur, _ := pq.Pop()
		if settled[cur.node] || cur.dist > res.Dist[cur.node] {
			continue
		}
		if cur.dist > cfg.MaxDistance {
			break
		}
		settled[cur.node] = true

		for _, nb := range cur.node.Neighbors() {
			if settled[nb] {
				continue
			}
			cost := w(cur.node, nb)
			if math.IsNaN(cost) || cost < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, cur.node.Pos, nb.Pos, cost)
			}
			nd := cur.dist + cost
			if old, ok := res.Dist[nb]; !ok || nd < old {
				res.Dist[nb] = nd
				res.Prev[nb] = cur.node
				pq.Push(&entry{node: nb, dist: nd})
			}
		}
	}

	// Drop tentative distances that were never settled (beyond MaxDistance).
	for n := range res.Dist {
		if !settled[n] {
			delete(res.Dist, n)
			delete(res.Prev, n)
		}
	}

	return res, nil
}
