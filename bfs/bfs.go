// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: FIFO walker and the FindPath / Route entry points.

package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// walker encapsulates mutable BFS state for one FindPath call.
type walker[T any] struct {
	topo    core.Topology[T]
	opts    search.Options
	queue   *linkedlistqueue.Queue
	visited []bool
	depth   []int
	parent  []core.VertexID
}

// FindPath returns the payloads along a fewest-edge path from source to
// destination, or found == false when destination is unreachable.
//
// Returns search.ErrNilGraph, core.ErrNilVertex or core.ErrVertexNotFound for
// invalid input, search.ErrOptionViolation for bad options, the context error
// on cancellation, or a wrapped OnVisit error.
func (s *Searcher[T]) FindPath(source, destination *core.Vertex[T]) ([]T, bool, error) {
	return search.Payloads(s.Route(source, destination))
}

// Route is FindPath returning the vertices of the path instead of payloads.
func (s *Searcher[T]) Route(source, destination *core.Vertex[T]) (search.Route[T], bool, error) {
	if s.g == nil {
		return search.Route[T]{}, false, search.ErrNilGraph
	}
	o, err := search.Resolve(s.opts...)
	if err != nil {
		return search.Route[T]{}, false, err
	}

	var (
		route search.Route[T]
		found bool
	)
	err = s.g.Read(func(t core.Topology[T]) error {
		from, to, err := search.Endpoints(t, source, destination)
		if err != nil {
			return err
		}
		n := t.Len()
		w := &walker[T]{
			topo:    t,
			opts:    o,
			queue:   linkedlistqueue.New(),
			visited: make([]bool, n),
			depth:   make([]int, n),
			parent:  search.NewParents(n),
		}
		route, found, err = w.run(from, to)

		return err
	})
	if err != nil {
		return search.Route[T]{}, false, err
	}

	return route, found, nil
}

// enqueue marks id visited at depth d, records its parent and appends it to
// the queue. Marking at enqueue time keeps a vertex from entering the queue twice.
func (w *walker[T]) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.depth[id] = d
	w.parent[id] = parent
	w.queue.Enqueue(id)
}

// run processes the queue until the destination is dequeued, the queue is
// empty, or an error occurs.
func (w *walker[T]) run(from, to core.VertexID) (search.Route[T], bool, error) {
	w.enqueue(from, 0, core.NoVertex)

	expanded := 0
	for !w.queue.Empty() {
		if err := w.opts.Canceled(); err != nil {
			return search.Route[T]{}, false, err
		}

		raw, _ := w.queue.Dequeue()
		cur := raw.(core.VertexID)
		if err := w.opts.OnVisit(cur, float64(w.depth[cur])); err != nil {
			return search.Route[T]{}, false, fmt.Errorf("bfs: OnVisit error at %v: %w", w.topo.Vertex(cur).Payload(), err)
		}

		if cur == to {
			w.opts.Logger.Debug("bfs: destination reached", "hops", w.depth[cur], "expanded", expanded)
			return search.Reconstruct(w.topo, w.parent, to), true, nil
		}

		next := w.depth[cur] + 1
		if float64(next) > w.opts.MaxCost {
			continue
		}
		expanded++
		err := w.topo.Adjacent(cur, func(nbr core.VertexID, _ float64) bool {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, cur)
			}
			return true
		})
		if err != nil {
			return search.Route[T]{}, false, fmt.Errorf("bfs: neighbors of %v: %w", w.topo.Vertex(cur).Payload(), err)
		}
	}

	w.opts.Logger.Debug("bfs: frontier exhausted", "expanded", expanded)

	return search.Route[T]{}, false, nil
}
