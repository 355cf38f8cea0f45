// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Vertex registration, edge insertion and read-only queries on Graph.
//
// Determinism:
//   - Vertices() returns registration order; Edges() returns insertion order.
//   - Neighbors() returns the neighbor list in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddVertex registers v in the graph if it is not registered yet.
//
// Re-adding a registered vertex is a no-op: its handle and neighbor list are kept.
//
// Errors:
//   - ErrNilVertex: v == nil.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(v *Vertex[T]) error {
	if v == nil {
		return ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[v]; exists {
		return nil
	}
	g.index[v] = VertexID(len(g.vertices))
	g.vertices = append(g.vertices, v)
	g.neighbors = append(g.neighbors, nil)

	return nil
}

// AddEdge connects the registered vertices a and b with an undirected edge of
// the given weight.
//
// The edge is materialized symmetrically: b enters a's adjacency and a enters
// b's, each appended once to the other's neighbor list. Adding an edge that
// already exists overwrites its weight on both sides. A self-loop is recorded
// once. On error the graph is left unchanged.
//
// Errors:
//   - ErrNilVertex:      a or b is nil.
//   - ErrBadWeight:      weight is negative, NaN or ±Inf.
//   - ErrVertexNotFound: a or b is not registered.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(a, b *Vertex[T], weight float64) error {
	if a == nil || b == nil {
		return ErrNilVertex
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: got %g", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ida, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %v", ErrVertexNotFound, a.payload)
	}
	idb, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %v", ErrVertexNotFound, b.payload)
	}

	a.AddAdjacent(b, weight)
	b.AddAdjacent(a, weight)

	ref := edgeRef{a: ida, b: idb}
	if _, existed := g.edgeSet[ref.key()]; existed {
		return nil
	}
	g.edgeSet[ref.key()] = struct{}{}

	g.neighbors[ida] = append(g.neighbors[ida], idb)
	if ida != idb {
		g.neighbors[idb] = append(g.neighbors[idb], ida)
	}
	g.edges = append(g.edges, ref)

	return nil
}

// HasVertex reports whether v is registered.
func (g *Graph[T]) HasVertex(v *Vertex[T]) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// ID returns the handle of a registered vertex.
func (g *Graph[T]) ID(v *Vertex[T]) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[v]

	return id, ok
}

// Vertex returns the vertex registered under id.
//
// Errors:
//   - ErrVertexNotFound: id is out of range.
func (g *Graph[T]) Vertex(id VertexID) (*Vertex[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.vertices) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// Neighbors returns the vertices adjacent to v in edge insertion order.
//
// Errors:
//   - ErrNilVertex:      v == nil.
//   - ErrVertexNotFound: v is not registered.
//
// Complexity: O(deg(v)).
func (g *Graph[T]) Neighbors(v *Vertex[T]) ([]*Vertex[T], error) {
	if v == nil {
		return nil, ErrNilVertex
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v.payload)
	}
	out := make([]*Vertex[T], 0, len(g.neighbors[id]))
	for _, n := range g.neighbors[id] {
		out = append(out, g.vertices[n])
	}

	return out, nil
}

// Vertices returns all registered vertices in registration order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []*Vertex[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex[T], len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns every logical edge once, in insertion order, with its current weight.
// Complexity: O(E).
func (g *Graph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[T], 0, len(g.edges))
	for _, e := range g.edges {
		from, to := g.vertices[e.a], g.vertices[e.b]
		out = append(out, Edge[T]{From: from, To: to, Weight: from.adjacent[to]})
	}

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical undirected edges.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
