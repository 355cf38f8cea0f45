// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: The Searcher contract, Route, and the path reconstruction shared by
//       every strategy.

package search

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Searcher finds a path between two vertices of a graph.
//
// FindPath returns the payloads along the path, source first and destination
// last, with found == true. When destination is unreachable it returns
// (nil, false, nil): absence of a path is not an error. When source and
// destination are the same vertex the path is that single payload.
type Searcher[T any] interface {
	FindPath(source, destination *core.Vertex[T]) (path []T, found bool, err error)
}

// Route is a found path as vertices, source first.
type Route[T any] struct {
	Vertices []*core.Vertex[T]
}

// Payloads returns the payload of every vertex on the route, in order.
func (r Route[T]) Payloads() []T {
	out := make([]T, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = v.Payload()
	}

	return out
}

// Hops returns the number of edges on the route.
func (r Route[T]) Hops() int {
	if len(r.Vertices) == 0 {
		return 0
	}

	return len(r.Vertices) - 1
}

// Weight returns the total edge weight along the route, read from the
// vertices' adjacency.
func (r Route[T]) Weight() float64 {
	var total float64
	for i := 1; i < len(r.Vertices); i++ {
		w, _ := r.Vertices[i-1].Weight(r.Vertices[i])
		total += w
	}

	return total
}

// Reconstruct walks parent backward from dst until it meets a vertex without
// parent (the search root), then reverses the walk so the route runs
// root → dst.
//
// parent is indexed by handle; core.NoVertex marks "no parent".
func Reconstruct[T any](t core.Topology[T], parent []core.VertexID, dst core.VertexID) Route[T] {
	var rev []*core.Vertex[T]
	for cur := dst; cur != core.NoVertex; cur = parent[cur] {
		rev = append(rev, t.Vertex(cur))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Route[T]{Vertices: rev}
}

// Endpoints resolves the handles of source and destination.
//
// Errors:
//   - core.ErrNilVertex:      either vertex is nil.
//   - core.ErrVertexNotFound: either vertex is not registered.
func Endpoints[T any](t core.Topology[T], source, destination *core.Vertex[T]) (core.VertexID, core.VertexID, error) {
	if source == nil || destination == nil {
		return core.NoVertex, core.NoVertex, core.ErrNilVertex
	}
	src, ok := t.ID(source)
	if !ok {
		return core.NoVertex, core.NoVertex, fmt.Errorf("%w: source %v", core.ErrVertexNotFound, source.Payload())
	}
	dst, ok := t.ID(destination)
	if !ok {
		return core.NoVertex, core.NoVertex, fmt.Errorf("%w: destination %v", core.ErrVertexNotFound, destination.Payload())
	}

	return src, dst, nil
}

// NewParents returns a parent slice of length n with every entry set to core.NoVertex.
func NewParents(n int) []core.VertexID {
	parent := make([]core.VertexID, n)
	for i := range parent {
		parent[i] = core.NoVertex
	}

	return parent
}

// Payloads adapts a Route lookup to the FindPath shape.
func Payloads[T any](r Route[T], found bool, err error) ([]T, bool, error) {
	if err != nil || !found {
		return nil, false, err
	}

	return r.Payloads(), true, nil
}
