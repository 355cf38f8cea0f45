// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: The bfs.Searcher type and its constructor.

package bfs

import (
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// Searcher finds fewest-edge paths in a core.Graph. Edge weights are ignored.
//
// A Searcher holds no per-search state, so one value may serve concurrent
// FindPath calls.
type Searcher[T any] struct {
	g    *core.Graph[T]
	opts []search.Option
}

var _ search.Searcher[string] = (*Searcher[string])(nil)

// New binds a breadth-first Searcher to g. Options are validated on every
// search; an invalid one surfaces as search.ErrOptionViolation.
func New[T any](g *core.Graph[T], opts ...search.Option) *Searcher[T] {
	return &Searcher[T]{g: g, opts: opts}
}

