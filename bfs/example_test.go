package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/core"
)

// ExampleSearcher_FindPath finds the fewest-edge route across the farm square.
func ExampleSearcher_FindPath() {
	g := core.NewGraph[string]()
	donkey, sheep := core.NewVertex("donkey"), core.NewVertex("sheep")
	cow, horse := core.NewVertex("cow"), core.NewVertex("horse")
	for _, v := range []*core.Vertex[string]{donkey, sheep, cow, horse} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(donkey, sheep, 9)
	_ = g.AddEdge(sheep, cow, 3)
	_ = g.AddEdge(cow, horse, 5)
	_ = g.AddEdge(horse, donkey, 8)

	path, found, err := bfs.New(g).FindPath(donkey, horse)
	fmt.Println(path, found, err)
	// Output: [donkey horse] true <nil>
}
