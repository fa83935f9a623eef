// Package prim_kruskal defines the sentinel errors and the heap entry type
// shared by the MST reduction, restoration and Kruskal routines.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/procmesh/core"
)

// ErrInvalidGraph indicates a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrNilWeight indicates a nil weight function was passed.
var ErrNilWeight = errors.New("prim_kruskal: weight function is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidRatio indicates a restore ratio outside [0,1] (or NaN).
var ErrInvalidRatio = errors.New("prim_kruskal: ratio must be within [0,1]")

// weightedEdge is a heap entry: from always belongs to the tree (Prim) or is
// the scanning node (restore); to is the direction of travel.
type weightedEdge struct {
	from *core.Node
	to   *core.Node
	w    float64
}

func byWeight(e *weightedEdge) float64 { return e.w }

// validate checks the common preconditions of every routine here.
func validate(g *core.Graph, w core.WeightFunc) error {
	if g == nil {
		return ErrInvalidGraph
	}
	if w == nil {
		return ErrNilWeight
	}

	return nil
}
