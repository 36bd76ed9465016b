// Package gridgraph defines core types and sentinel errors for rectangular
// rune grids used as implicit graphs.
package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNotDigit indicates a non-digit cell in a digit grid.
	ErrNotDigit = errors.New("gridgraph: cell is not a decimal digit")
)

// Outside is returned by At for coordinates off the grid.
const Outside rune = 0

// Point is a cell coordinate: X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Move returns the neighbor of p one step in direction d.
func (p Point) Move(d Direction) Point { return p.Add(d.Delta()) }

// String renders p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point { return deltas[d&3] }

// Opposite returns the heading rotated by 180°.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// TurnRight returns the heading rotated clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft returns the heading rotated counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

func (d Direction) String() string {
	switch d & 3 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// Grid is an immutable rectangular rune grid.
// cells[y][x] holds the rune at Point{x, y}.
type Grid struct {
	Width, Height int
	cells         [][]rune
}
