// Package dijkstra provides least-total-weight path search over a core.Graph.
//
// What
//
//   - Finds a path whose summed edge weight is minimal among all paths
//     between two vertices.
//   - Weights must be non-negative; core.Graph.AddEdge guarantees that.
//   - The search stops as soon as the destination is settled.
//
// Algorithm
//
//  1. Set the source distance to 0 and push it onto the frontier.
//  2. Pop the entry with the smallest distance. Skip it if its vertex was
//     already settled or a shorter distance was pushed since (lazy deletion).
//  3. Settle cur. If cur is the destination, rebuild the path from the parent
//     links and return it.
//  4. For every unsettled neighbor n with weight w: if n has no distance yet or
//     dist[cur]+w < dist[n], record the new distance and parent, then push n.
//  5. An empty frontier means there is no path.
//
// Determinism
//
//	Equal distances pop in push order, and a strictly smaller distance is
//	required to replace a parent, so among equally light paths the one found
//	first wins.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)   (lazy deletion may keep one frontier entry per relaxation)
//
// Errors
//
//	ErrNegativeWeight – negative or NaN weight met during relaxation
//	plus the errors shared with every strategy, see package search.
//
// Usage
//
//	s := dijkstra.New(g, search.WithMaxCost(100))
//	r, found, err := s.Route(src, dst)
//	fmt.Println(r.Payloads(), r.Weight())
package dijkstra
