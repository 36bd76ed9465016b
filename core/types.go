// Package core defines a small thread-safe in-memory Graph with string
// vertex IDs and int64 edge weights, plus adapters that expose it through
// the neighbor-callback contract of the search packages.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrNegativeWeight      - negative weight provided to a weighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a negative weight; the searches assume
	// non-negative costs.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one stored connection From→To with an integer Weight.
// Undirected graphs store a single Edge and mirror it in the adjacency.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// half is one traversable direction of a stored edge.
type half struct {
	to     string
	weight int64
}

// Graph is an adjacency-list graph.
//
// Vertices and adjacency keep insertion order so that neighbor callbacks built
// on the graph are deterministic. mu guards all fields below it.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	order     []string          // vertex IDs in insertion order
	adjacency map[string][]half // from → outgoing halves in insertion order
	edges     []Edge            // stored edges in insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]half),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
