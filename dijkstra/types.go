package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/procmesh/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates a nil weight function.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrSourceNotFound indicates that the source node is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures Dijkstra.
type Options struct {
	// MaxDistance caps settled distances. Default +Inf.
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance stops settling nodes beyond max.
// Panics on a negative or NaN max.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic("dijkstra: WithMaxDistance(max<0)")
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an unbounded search.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result maps each settled node to its distance and predecessor.
// Unreached nodes are absent from both maps.
type Result struct {
	Source *core.Node
	Dist   map[*core.Node]float64
	Prev   map[*core.Node]*core.Node
}

// PathTo returns the node sequence source → dest, or nil if dest was not
// reached.
func (r *Result) PathTo(dest *core.Node) []*core.Node {
	if _, ok := r.Dist[dest]; !ok {
		return nil
	}
	var path []*core.Node
	for cur := dest; cur != nil; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Farthest returns the reached node with the largest distance. Ties keep
// the first node in graph order.
func (r *Result) Farthest(g *core.Graph) (*core.Node, float64) {
	var far *core.Node
	best := -1.0
	for _, n := range g.Nodes() {
		if d, ok := r.Dist[n]; ok && d > best {
			far, best = n, d
		}
	}

	return far, best
}
