// Package search defines the contract shared by the lvlpath path-finding
// strategies and the pieces they have in common.
//
// What
//
//   - Searcher[T]: one operation, FindPath(source, destination), returning the
//     payloads along a path or found == false when none exists.
//   - Route[T]: a found path as vertices, with Hops() and Weight().
//   - Reconstruct: parent-pointer walk from destination back to the root,
//     reversed into root → destination order. Both bfs and dijkstra use it.
//   - Options: WithContext, WithLogger, WithOnVisit, WithMaxCost.
//
// Strategies
//
//	bfs.New(g)      – fewest edges, FIFO frontier, weights ignored
//	dijkstra.New(g) – least total weight, min-priority frontier
//
// Errors
//
//   - ErrNilGraph             strategy bound to a nil graph.
//   - ErrOptionViolation      invalid Option (e.g. negative MaxCost).
//   - core.ErrNilVertex       nil source or destination.
//   - core.ErrVertexNotFound  source or destination not registered.
//   - context errors          when the WithContext context is done.
//
// "No path" is never an error.
package search
