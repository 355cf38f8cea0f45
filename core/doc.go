// Package core provides the in-memory Vertex and Graph types that the lvlpath
// search strategies operate on.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertex[T] carries a payload of any type and its own adjacency
//     (neighbor → weight). Identity is the *Vertex[T] pointer, never the payload.
//   - Graph[T] registers vertices and assigns each a dense VertexID handle
//     (0, 1, 2, … in registration order). Search state is indexed by handle.
//   - AddEdge materializes one logical edge symmetrically in both endpoints'
//     adjacency and neighbor lists.
//
// Core Methods:
//
//	NewVertex(payload T) *Vertex[T]                 // O(1)
//	(*Vertex).Payload() T                           // O(1)
//	(*Vertex).AddAdjacent(n *Vertex[T], w float64)  // O(1), unvalidated
//	(*Vertex).Adjacents() []Adjacent[T]             // O(deg), insertion order
//
//	NewGraph[T]() *Graph[T]
//	AddVertex(v) error                   // insert-if-absent, O(1)
//	AddEdge(a, b, w) error               // O(1), validates endpoints and weight
//	Neighbors(v) ([]*Vertex[T], error)   // O(deg), insertion order
//	Vertices() / Edges()                 // deterministic snapshots
//	Read(fn func(Topology[T]) error)     // read-locked handle view
//
// Errors:
//
//	ErrNilVertex      – nil vertex argument
//	ErrVertexNotFound – vertex not registered in this graph
//	ErrBadWeight      – negative, NaN or infinite weight
//
// Concurrency:
//
//	Graph methods are safe for concurrent use (single sync.RWMutex). Direct
//	Vertex.AddAdjacent calls are not synchronized.
//
// Quick ASCII example:
//
//	donkey ─9─ sheep
//	  │          │
//	  8          3
//	  │          │
//	horse ──5── cow
package core
