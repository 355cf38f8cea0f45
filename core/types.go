// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Adjacent, Edge, VertexID and Graph declarations, sentinel errors,
//       and the NewVertex / NewGraph constructors.
//
// Errors:
//
//	ErrNilVertex      - vertex pointer is nil.
//	ErrVertexNotFound - vertex is not registered in the graph.
//	ErrBadWeight      - edge weight is negative, NaN or infinite.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates an operation referenced a vertex that is not registered.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// VertexID is the dense, stable handle a Graph assigns to a registered vertex.
// Handles are arena indices in registration order: 0, 1, 2, ...
type VertexID int

// NoVertex marks an absent handle (e.g. the parent of a search root).
const NoVertex VertexID = -1

// Vertex is an identity-bearing graph node carrying a payload and its weighted adjacency.
//
// Identity is the pointer: two vertices with equal payloads are distinct
// unless they are the same instance.
type Vertex[T any] struct {
	// payload is the user value carried by the vertex.
	payload T

	// adjacent maps neighbor → edge weight.
	adjacent map[*Vertex[T]]float64

	// order remembers neighbors in insertion order; Go maps do not.
	order []*Vertex[T]
}

// Adjacent is one entry of a vertex adjacency: a neighbor and the edge weight to it.
type Adjacent[T any] struct {
	Vertex *Vertex[T]
	Weight float64
}

// Edge is a read-only record of one undirected edge as returned by Graph.Edges.
type Edge[T any] struct {
	From   *Vertex[T]
	To     *Vertex[T]
	Weight float64
}

// Graph is an undirected weighted graph of Vertex[T].
//
// Each registered vertex receives a VertexID; neighbors holds, per handle, the
// handles of adjacent vertices in insertion order. Edge weights live on the
// vertices themselves. mu guards every field below it.
type Graph[T any] struct {
	mu sync.RWMutex

	index     map[*Vertex[T]]VertexID // vertex → handle
	vertices  []*Vertex[T]            // handle → vertex (arena)
	neighbors [][]VertexID            // handle → neighbor handles
	edges     []edgeRef               // logical edges in insertion order
	edgeSet   map[edgeRef]struct{}    // normalized pairs, a ≤ b
}

// edgeRef is the handle pair of one logical edge.
type edgeRef struct{ a, b VertexID }

// key returns the pair with a ≤ b, so both directions share one entry.
func (e edgeRef) key() edgeRef {
	if e.a > e.b {
		return edgeRef{a: e.b, b: e.a}
	}

	return e
}

// NewVertex creates a vertex holding payload with an empty adjacency.
// Complexity: O(1).
func NewVertex[T any](payload T) *Vertex[T] {
	return &Vertex[T]{
		payload:  payload,
		adjacent: make(map[*Vertex[T]]float64),
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{
		index:   make(map[*Vertex[T]]VertexID),
		edgeSet: make(map[edgeRef]struct{}),
	}
}
