// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The dijkstra.Searcher type, its constructor and sentinel errors.

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// ErrNegativeWeight is returned when relaxation meets a negative or NaN edge
// weight. core.Graph.AddEdge rejects such weights, so this only happens when
// a caller wrote adjacency directly through Vertex.AddAdjacent.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Searcher finds least-total-weight paths in a core.Graph.
//
// A Searcher holds no per-search state, so one value may serve concurrent
// FindPath calls.
type Searcher[T any] struct {
	g    *core.Graph[T]
	opts []search.Option
}

var _ search.Searcher[string] = (*Searcher[string])(nil)

// New binds a Dijkstra Searcher to g.
func New[T any](g *core.Graph[T], opts ...search.Option) *Searcher[T] {
	return &Searcher[T]{g: g, opts: opts}
}
