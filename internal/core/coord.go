// Package core provides the grid simulation toolkit shared by the spatial
// puzzles: coordinates, a bounds-checked digit grid, neighbor enumeration
// and worklist traversal. It has no dependencies outside the standard
// library so puzzle logic stays pure and testable.
package core

import "fmt"

// Coord is a 2D integer point.
// X increases to the right, Y increases downward (row order of the input).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add is the free-function form of Coord.Add.
func Add(a, b Coord) Coord {
	return a.Add(b)
}
