// Package lvlpath finds paths between vertices of undirected weighted graphs.
//
// What is lvlpath?
//
//	A small, thread-safe path-finding library plus a CLI:
//		• core:      Vertex and Graph, identity-based, RWMutex-guarded
//		• search:    the Searcher contract, Route, shared options
//		• bfs:       fewest edges
//		• dijkstra:  least total weight
//		• builder:   deterministic graph constructors for fixtures and benchmarks
//		• graphfile: TOML graph documents
//		• render:    Graphviz DOT and SVG with a highlighted route
//
// Both strategies answer the same question:
//
//	path, found, err := s.FindPath(source, destination)
//
// found == false with a nil error means no path exists. Errors are reserved
// for bad input (nil or unregistered vertices, invalid options), cancellation
// and adjacency corrupted behind the graph's back.
//
// Quick ASCII example:
//
//	donkey ─9─ sheep
//	  │          │
//	  8          3
//	  │          │
//	horse ──5── cow
//
//	bfs:      donkey → sheep → cow   (2 hops, weight 12, sheep was added first)
//	dijkstra: donkey → sheep → cow   (weight 12 beats 13 via horse)
//
// The lvlpath command wraps it all: lvlpath demo, find, render, gen.
package lvlpath
