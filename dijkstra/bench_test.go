package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// BenchmarkFindPath_Grid measures a corner-to-corner search on a 50×50 grid
// with seeded uniform weights.
func BenchmarkFindPath_Grid(b *testing.B) {
	net, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
		builder.Grid(50, 50),
	)
	if err != nil {
		b.Fatal(err)
	}
	src, _ := net.Lookup(builder.GridID(0, 0))
	dst, _ := net.Lookup(builder.GridID(49, 49))
	s := dijkstra.New(net.Graph())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found, err := s.FindPath(src, dst); err != nil || !found {
			b.Fatalf("found=%v err=%v", found, err)
		}
	}
}

// BenchmarkFindPath_Dense measures a search on K_200.
func BenchmarkFindPath_Dense(b *testing.B) {
	net, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithWeightFn(builder.IntWeightFn(1, 100))},
		builder.Complete(200),
	)
	if err != nil {
		b.Fatal(err)
	}
	src, _ := net.Lookup("0")
	dst, _ := net.Lookup("199")
	s := dijkstra.New(net.Graph())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.FindPath(src, dst); err != nil {
			b.Fatal(err)
		}
	}
}
