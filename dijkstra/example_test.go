package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/procmesh/dijkstra"
)

func ExampleDijkstra() {
	g, ns := line()
	res, _ := dijkstra.Dijkstra(g, ns[0], euclid)
	for _, n := range res.PathTo(ns[3]) {
		fmt.Printf("%v=%g ", n.Pos, res.Dist[n])
	}
	fmt.Println()
	// Output:
	// (0,0)=0 (1,0)=1 (3,0)=3 (6,0)=6
}
