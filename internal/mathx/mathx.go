// Package mathx holds the small numeric helpers shared by the puzzle solvers.
package mathx

import (
	"golang.org/x/exp/constraints"

	"github.com/RiPs7/AdventOfCode2023/gridgraph"
)

// Abs returns |x|.
func Abs[N constraints.Signed | constraints.Float](x N) N {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b gridgraph.Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// ShoelaceArea2 returns twice the area of the simple polygon with the given
// vertices, in either winding order. A closing vertex equal to the first one
// may be present or omitted.
func ShoelaceArea2(vertices []gridgraph.Point) int {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	sum := 0
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return Abs(sum)
}

// InteriorPoints applies Pick's theorem: the number of lattice points
// strictly inside a lattice polygon with doubled area area2 and boundary
// lattice points boundary.
func InteriorPoints(area2, boundary int) int {
	return (area2-boundary)/2 + 1
}
