package dijkstra_test

import (
	"fmt"

	"github.com/RiPs7/AdventOfCode2023/core"
	"github.com/RiPs7/AdventOfCode2023/dijkstra"
)

// ExampleSearch shows that the three cheap hops A→B→C→D (cost 3) beat both
// A→C→D (cost 5) and A→B→D (cost 6).
func ExampleSearch() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 1)

	path, cost, err := dijkstra.Search("A", func(v string) bool { return v == "D" }, g.EdgesAt)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)
	// Output:
	// [A B C D] 3
}
