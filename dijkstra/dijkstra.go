// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Min-priority frontier runner and the FindPath / Route entry points.
//
// The frontier uses lazy deletion: an improved distance pushes a new entry and
// the stale one is discarded when popped. Entries with equal distance pop in
// push order (seq), which keeps results deterministic.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// item is one frontier entry.
type item struct {
	id   core.VertexID
	dist float64
	seq  uint64
}

// byDistance orders items by dist, then by seq.
func byDistance(a, b interface{}) int {
	x, y := a.(item), b.(item)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

// runner encapsulates mutable Dijkstra state for one FindPath call.
type runner[T any] struct {
	topo    core.Topology[T]
	opts    search.Options
	pq      *priorityqueue.Queue
	seq     uint64
	dist    []float64
	reached []bool
	visited []bool
	parent  []core.VertexID
}

// FindPath returns the payloads along a least-total-weight path from source to
// destination, or found == false when destination is unreachable.
//
// Returns search.ErrNilGraph, core.ErrNilVertex or core.ErrVertexNotFound for
// invalid input, search.ErrOptionViolation for bad options, ErrNegativeWeight,
// the context error on cancellation, or a wrapped OnVisit error.
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
		r := &runner[T]{
			topo:    t,
			opts:    o,
			pq:      priorityqueue.NewWith(byDistance),
			dist:    make([]float64, n),
			reached: make([]bool, n),
			visited: make([]bool, n),
			parent:  search.NewParents(n),
		}
		for i := range r.dist {
			r.dist[i] = math.Inf(1)
		}
		route, found, err = r.run(from, to)

		return err
	})
	if err != nil {
		return search.Route[T]{}, false, err
	}

	return route, found, nil
}

func (r *runner[T]) push(id core.VertexID, d float64, parent core.VertexID) {
	r.dist[id] = d
	r.reached[id] = true
	r.parent[id] = parent
	r.pq.Enqueue(item{id: id, dist: d, seq: r.seq})
	r.seq++
}

// run settles vertices in order of distance until the destination is settled,
// the frontier is empty, or an error occurs.
func (r *runner[T]) run(from, to core.VertexID) (search.Route[T], bool, error) {
	r.push(from, 0, core.NoVertex)

	settled, stale := 0, 0
	for !r.pq.Empty() {
		if err := r.opts.Canceled(); err != nil {
			return search.Route[T]{}, false, err
		}

		raw, _ := r.pq.Dequeue()
		it := raw.(item)
		cur := it.id
		if r.visited[cur] || it.dist > r.dist[cur] {
			stale++
			continue
		}
		r.visited[cur] = true
		settled++

		if err := r.opts.OnVisit(cur, r.dist[cur]); err != nil {
			return search.Route[T]{}, false, fmt.Errorf("dijkstra: OnVisit error at %v: %w", r.topo.Vertex(cur).Payload(), err)
		}

		if cur == to {
			r.opts.Logger.Debug("dijkstra: destination settled",
				"weight", r.dist[cur], "settled", settled, "stale", stale)
			return search.Reconstruct(r.topo, r.parent, to), true, nil
		}

		if err := r.relax(cur); err != nil {
			return search.Route[T]{}, false, err
		}
	}

	r.opts.Logger.Debug("dijkstra: frontier exhausted", "settled", settled, "stale", stale)

	return search.Route[T]{}, false, nil
}

// relax offers cur's settled distance to every unvisited neighbor.
func (r *runner[T]) relax(cur core.VertexID) error {
	var bad error
	err := r.topo.Adjacent(cur, func(nbr core.VertexID, w float64) bool {
		if w < 0 || math.IsNaN(w) {
			bad = fmt.Errorf("%w: %v–%v weight %g", ErrNegativeWeight,
				r.topo.Vertex(cur).Payload(), r.topo.Vertex(nbr).Payload(), w)
			return false
		}
		if r.visited[nbr] {
			return true
		}
		nd := r.dist[cur] + w
		if nd > r.opts.MaxCost {
			return true
		}
		if !r.reached[nbr] || nd < r.dist[nbr] {
			r.push(nbr, nd, cur)
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", r.topo.Vertex(cur).Payload(), err)
	}

	return bad
}
