// Package gridgraph treats Advent of Code style text grids as implicit graphs.
//
// A Grid is parsed once from puzzle input and never mutated; overlays
// (With) return fresh copies. Points use screen coordinates: X to the right,
// Y downward, so Up is {0,-1}.
//
// Typical use with the search packages:
//
//	g, _ := gridgraph.Parse(input)
//	start, _ := g.Find('S')
//	path, err := bfs.Search(start, goal, func(p gridgraph.Point) []gridgraph.Point {
//		var out []gridgraph.Point
//		for _, q := range g.Neighbors4(p) {
//			if g.At(q) != '#' {
//				out = append(out, q)
//			}
//		}
//		return out
//	})
//
// Directions are ordered clockwise (Up, Right, Down, Left), which fixes the
// neighbor order and therefore the tie-breaking of every search built on it.
//
// Errors:
//
//   - ErrEmptyGrid       no rows, or an empty first row.
//   - ErrNonRectangular  rows of different length.
//   - ErrNotDigit        ParseDigits met a non-digit cell.
package gridgraph
