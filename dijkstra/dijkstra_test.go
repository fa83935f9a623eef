package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/dijkstra"
	"github.com/katalvlaran/procmesh/geom"
)

func euclid(a, b *core.Node) float64 { return a.Pos.Distance(b.Pos) }

// line builds nodes at x = 0, 1, 3, 6 connected in a path, plus a
// shortcut 0–3 of length 6.
func line() (*core.Graph, []*core.Node) {
	g := core.NewGraph()
	xs := []float64{0, 1, 3, 6}
	ns := make([]*core.Node, len(xs))
	for i, x := range xs {
		ns[i] = g.CreateNodeAt(geom.Point{X: x})
	}
	for i := 0; i+1 < len(ns); i++ {
		ns[i].Connect(ns[i+1])
	}

	return g, ns
}

func TestDijkstra_Errors(t *testing.T) {
	g, ns := line()
	_, err := dijkstra.Dijkstra(nil, ns[0], euclid)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.Dijkstra(g, ns[0], nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilWeight)
	_, err = dijkstra.Dijkstra(g, core.NewGraph().CreateNode(), euclid)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)

	neg := func(a, b *core.Node) float64 { return -1 }
	_, err = dijkstra.Dijkstra(g, ns[0], neg)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_Path(t *testing.T) {
	g, ns := line()
	res, err := dijkstra.Dijkstra(g, ns[0], euclid)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist[ns[0]])
	assert.Equal(t, 1.0, res.Dist[ns[1]])
	assert.Equal(t, 3.0, res.Dist[ns[2]])
	assert.Equal(t, 6.0, res.Dist[ns[3]])
	assert.Equal(t, ns, res.PathTo(ns[3]))

	far, d := res.Farthest(g)
	assert.Same(t, ns[3], far)
	assert.Equal(t, 6.0, d)
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	g, ns := line()
	// Direct 0–3 edge is costed at 10, more than the 6 of the path.
	ns[0].Connect(ns[3])
	w := func(a, b *core.Node) float64 {
		if (a == ns[0] && b == ns[3]) || (a == ns[3] && b == ns[0]) {
			return 10
		}
		return euclid(a, b)
	}

	res, err := dijkstra.Dijkstra(g, ns[0], w)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Dist[ns[3]])
	assert.Same(t, ns[2], res.Prev[ns[3]])
}

func TestDijkstra_MaxDistanceAndUnreached(t *testing.T) {
	g, ns := line()
	lonely := g.CreateNode()

	res, err := dijkstra.Dijkstra(g, ns[0], euclid, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 3)
	assert.NotContains(t, res.Dist, ns[3])
	assert.NotContains(t, res.Prev, ns[3])
	assert.Nil(t, res.PathTo(ns[3]))
	assert.Nil(t, res.PathTo(lonely))
}

// TestDijkstra_TriangleInequality: on a random geometric graph no settled
// distance is shorter than the straight line.
func TestDijkstra_TriangleInequality(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := core.NewGraph()
	for i := 0; i < 40; i++ {
		g.CreateNodeAt(geom.Point{X: r.Float64() * 10, Y: r.Float64() * 10})
	}
	ns := g.Nodes()
	for i := 1; i < len(ns); i++ {
		ns[i].Connect(ns[r.Intn(i)])
	}
	for k := 0; k < 30; k++ {
		a, b := ns[r.Intn(len(ns))], ns[r.Intn(len(ns))]
		if a != b && !a.HasNeighbor(b) {
			a.Connect(b)
		}
	}

	res, err := dijkstra.Dijkstra(g, ns[0], euclid)
	require.NoError(t, err)
	require.Len(t, res.Dist, len(ns))
	for _, n := range ns {
		assert.GreaterOrEqual(t, res.Dist[n]+1e-9, ns[0].Pos.Distance(n.Pos))
		// Dist equals the length of the reconstructed path.
		path := res.PathTo(n)
		var length float64
		for i := 1; i < len(path); i++ {
			length += euclid(path[i-1], path[i])
		}
		assert.InDelta(t, res.Dist[n], length, 1e-9)
	}
	assert.False(t, math.IsInf(res.Dist[ns[len(ns)-1]], 0))
}
