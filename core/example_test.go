package core_test

import (
	"fmt"

	"github.com/RiPs7/AdventOfCode2023/core"
)

// ExampleGraph_Successors builds a square A–B–D–C–A and lists neighbors.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph_Successors() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "D", 0)
	_ = g.AddEdge("D", "C", 0)
	_ = g.AddEdge("C", "A", 0)

	fmt.Println(g.Successors("A"))
	fmt.Println(g.Successors("D"))
	// Output:
	// [B C]
	// [B C]
}
