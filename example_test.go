package lvlpath_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// Example_cityRoute finds the fastest drive across six intersections.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]    C–D is all but closed
//	  |          \10
//	5 |          [E]
//	  |            \3
//	 [D]----6------[F]
func Example_cityRoute() {
	city := builder.NewNetwork()
	roads := []struct {
		u, v string
		min  float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "D", 1e9},
		{"C", "E", 10},
		{"D", "F", 6},
		{"E", "F", 3},
	}
	for _, r := range roads {
		if err := city.Connect(r.u, r.v, r.min); err != nil {
			log.Fatal(err)
		}
	}
	a, _ := city.Lookup("A")
	f, _ := city.Lookup("F")

	route, found, err := dijkstra.New(city.Graph()).Route(a, f)
	if err != nil || !found {
		log.Fatalf("found=%v err=%v", found, err)
	}

	fmt.Println("Fastest route from A to F:")
	for i := 1; i < len(route.Vertices); i++ {
		u, v := route.Vertices[i-1], route.Vertices[i]
		w, _ := u.Weight(v)
		fmt.Printf("  %s → %s : %g min\n", u.Payload(), v.Payload(), w)
	}
	fmt.Printf("Total travel time: %g minutes\n", route.Weight())
	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}

// Example_routerHops counts the fewest hops between two routers.
//
//	R1 ── R2 ── R3
//	│     │
//	R4 ── R5 ── R6
func Example_routerHops() {
	net := builder.NewNetwork()
	for _, l := range [][2]string{
		{"R1", "R2"}, {"R2", "R3"},
		{"R1", "R4"}, {"R4", "R5"},
		{"R2", "R5"}, {"R5", "R6"},
	} {
		if err := net.Connect(l[0], l[1], builder.DefaultEdgeWeight); err != nil {
			log.Fatal(err)
		}
	}
	r1, _ := net.Lookup("R1")
	r6, _ := net.Lookup("R6")

	path, found, err := bfs.New(net.Graph()).FindPath(r1, r6)
	if err != nil || !found {
		log.Fatalf("found=%v err=%v", found, err)
	}
	fmt.Printf("Shortest path from R1 to R6 (%d hops):\n", len(path)-1)
	for i, r := range path {
		fmt.Printf("  %2d: %s\n", i, r)
	}
	// Output:
	// Shortest path from R1 to R6 (3 hops):
	//    0: R1
	//    1: R2
	//    2: R5
	//    3: R6
}
