// SPDX-License-Identifier: MIT
//
// File: vertex.go
// Role: Vertex payload access and adjacency maintenance.
//
// Determinism:
//   - Adjacents() returns neighbors in insertion order.
//
// Concurrency:
//   - Vertex has no lock of its own. Graph.AddEdge mutates adjacency under the
//     graph write lock; direct AddAdjacent calls are the caller's to synchronize.

package core

// Payload returns the value stored in the vertex.
func (v *Vertex[T]) Payload() T { return v.payload }

// AddAdjacent inserts neighbor into the adjacency of v with the given weight,
// or overwrites the weight if neighbor is already adjacent.
//
// The weight is not validated here; Graph.AddEdge is the validating entry point.
// A nil neighbor is ignored.
//
// Complexity: O(1) amortized.
func (v *Vertex[T]) AddAdjacent(neighbor *Vertex[T], weight float64) {
	if neighbor == nil {
		return
	}
	if v.adjacent == nil {
		v.adjacent = make(map[*Vertex[T]]float64)
	}
	if _, ok := v.adjacent[neighbor]; !ok {
		v.order = append(v.order, neighbor)
	}
	v.adjacent[neighbor] = weight
}

// Adjacents returns a copy of the adjacency of v in insertion order.
// Complexity: O(deg(v)).
func (v *Vertex[T]) Adjacents() []Adjacent[T] {
	out := make([]Adjacent[T], 0, len(v.order))
	for _, n := range v.order {
		out = append(out, Adjacent[T]{Vertex: n, Weight: v.adjacent[n]})
	}

	return out
}

// Weight reports the weight of the edge from v to neighbor, if any.
func (v *Vertex[T]) Weight(neighbor *Vertex[T]) (float64, bool) {
	w, ok := v.adjacent[neighbor]

	return w, ok
}

// Degree returns the number of distinct neighbors of v.
func (v *Vertex[T]) Degree() int { return len(v.order) }
