package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/builder"
)

// BenchmarkFindPath_Grid measures a corner-to-corner search on a 50×50 grid.
func BenchmarkFindPath_Grid(b *testing.B) {
	net, err := builder.BuildGraph(nil, builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}
	src, _ := net.Lookup(builder.GridID(0, 0))
	dst, _ := net.Lookup(builder.GridID(49, 49))
	s := bfs.New(net.Graph())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found, err := s.FindPath(src, dst); err != nil || !found {
			b.Fatalf("found=%v err=%v", found, err)
		}
	}
}
