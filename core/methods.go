package core

import (
	"github.com/RiPs7/AdventOfCode2023/pathfind"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge connects from→to (and to→from unless directed), creating missing
// vertices.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//   - ErrNegativeWeight if weight < 0.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from→to exists without WithMultiEdges.
//
// Complexity: O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		for _, h := range g.adjacency[from] {
			if h.to == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], half{to: to, weight: weight})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], half{to: from, weight: weight})
	}

	return nil
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// AllEdges returns a copy of the stored edges in insertion order.
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Successors returns the distinct vertices reachable in one step from id,
// in insertion order. Unknown vertices have no successors.
//
// Its signature matches the bfs/dfs neighbor callback: pass g.Successors.
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	halves := g.adjacency[id]
	out := make([]string, 0, len(halves))
	seen := make(map[string]struct{}, len(halves))
	for _, h := range halves {
		if _, dup := seen[h.to]; dup {
			continue
		}
		seen[h.to] = struct{}{}
		out = append(out, h.to)
	}

	return out
}

// Edges returns the weighted steps out of id in insertion order, parallel
// edges included. On an unweighted graph every step costs 1.
//
// Its signature matches the astar neighbor callback: pass g.Edges.
func (g *Graph) Edges(id string) []pathfind.Edge[string, int64] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	halves := g.adjacency[id]
	out := make([]pathfind.Edge[string, int64], len(halves))
	for i, h := range halves {
		w := h.weight
		if !g.weighted {
			w = 1
		}
		out[i] = pathfind.Edge[string, int64]{To: h.to, Cost: w}
	}

	return out
}

// EdgesAt adapts Edges to the dijkstra neighbor callback, ignoring the
// accumulated cost: pass g.EdgesAt.
func (g *Graph) EdgesAt(id string, _ int64) []pathfind.Edge[string, int64] {
	return g.Edges(id)
}

// ensureVertex must be called with mu held for writing.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}
