// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Handle-indexed, read-locked view of a Graph for traversal algorithms.
//
// Concurrency:
//   - Topology is valid only inside the Read callback, which runs under the
//     graph read lock. Callbacks must not mutate the graph (AddVertex/AddEdge
//     would deadlock).

package core

import "fmt"

// Topology is a read-only view of a Graph addressed by VertexID.
type Topology[T any] struct {
	g *Graph[T]
}

// Read runs fn with a Topology of g while holding the graph read lock and
// returns fn's error.
func (g *Graph[T]) Read(fn func(t Topology[T]) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(Topology[T]{g: g})
}

// Len returns the number of registered vertices; valid handles are [0, Len()).
func (t Topology[T]) Len() int { return len(t.g.vertices) }

// ID returns the handle of v, if registered.
func (t Topology[T]) ID(v *Vertex[T]) (VertexID, bool) {
	id, ok := t.g.index[v]

	return id, ok
}

// Vertex returns the vertex behind a valid handle.
func (t Topology[T]) Vertex(id VertexID) *Vertex[T] { return t.g.vertices[id] }

// Adjacent calls fn for every neighbor of id, in the insertion order of the
// vertex adjacency, with the neighbor handle and edge weight. Iteration stops
// early when fn returns false.
//
// Errors:
//   - ErrVertexNotFound: the adjacency references a vertex that was never
//     registered (possible only when Vertex.AddAdjacent was called directly).
func (t Topology[T]) Adjacent(id VertexID, fn func(n VertexID, w float64) bool) error {
	v := t.g.vertices[id]
	for _, nv := range v.order {
		n, ok := t.g.index[nv]
		if !ok {
			return fmt.Errorf("%w: neighbor %v of %v", ErrVertexNotFound, nv.payload, v.payload)
		}
		if !fn(n, v.adjacent[nv]) {
			return nil
		}
	}

	return nil
}
