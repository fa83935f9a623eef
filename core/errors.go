package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates an adjacency or node index outside [0, len).
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrNodeNotFound indicates the node is nil or not registered in the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)
