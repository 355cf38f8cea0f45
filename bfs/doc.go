// Package bfs provides breadth-first path search over a core.Graph.
//
// What
//
//   - Finds a path with the minimum number of edges between two vertices.
//   - Edge weights are never consulted.
//   - The search stops as soon as the destination leaves the queue.
//
// Algorithm
//
//  1. Mark the source visited and enqueue it.
//  2. Dequeue the front vertex cur. If cur is the destination, rebuild the
//     path from the parent links and return it.
//  3. Otherwise, for every neighbor of cur in adjacency insertion order that is
//     not yet visited: mark it visited, record cur as its parent, enqueue it.
//  4. An empty queue means there is no path.
//
// Vertices are marked at enqueue time, not at dequeue time, so no vertex is
// queued twice even when several equally short paths reach it.
//
// Determinism
//
//	Neighbors are expanded in the order their edges were added, so ties
//	between equally short paths resolve to the earliest-added edges.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue, visited, depth and parent slices)
//
// Usage
//
//	s := bfs.New(g, search.WithContext(ctx), search.WithMaxCost(6))
//	path, found, err := s.FindPath(src, dst)
//	if err != nil {
//	    // search.ErrNilGraph, core.ErrNilVertex, core.ErrVertexNotFound,
//	    // search.ErrOptionViolation, ctx.Err() or an OnVisit error
//	}
//	if !found {
//	    // no path
//	}
package bfs
