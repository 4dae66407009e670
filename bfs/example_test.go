package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/seqclust/bfs"
	"github.com/katalvlaran/seqclust/core"
)

// ExampleComponents groups sequences into weakly connected islands,
// ignoring weak hits below 0.5.
func ExampleComponents() {
	g := core.NewGraph()
	for _, l := range []string{"seqA", "seqB", "seqC", "seqD", "seqE"} {
		_, _ = g.AddVertex(l)
	}
	_, _, _ = g.AddEdge("seqA", "seqB", 0.9)
	_, _, _ = g.AddEdge("seqC", "seqB", 0.7)
	_, _, _ = g.AddEdge("seqD", "seqE", 0.8)
	_, _, _ = g.AddEdge("seqC", "seqD", 0.2) // too weak to join the islands

	comps, err := bfs.Components(g, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, c := range comps {
		fmt.Print("component ", i, ":")
		for _, v := range c {
			fmt.Print(" ", g.Label(v))
		}
		fmt.Println()
	}
	// Output:
	// component 0: seqA seqB seqC
	// component 1: seqD seqE
}
