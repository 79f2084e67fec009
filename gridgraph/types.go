// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/wanderer.
package gridgraph

import "fmt"

// Node types with fixed meaning. Every other non-negative value is a
// "special" obstacle class whose passability depends on the override set.
const (
	// TypeOpen cells are always passable.
	TypeOpen = 0
	// TypeWall cells are never passable, whatever the agent knows or overrides.
	TypeWall = 1
)

// Direction selects one of the four orthogonal edges of a cell.
// The order is fixed: Left, Up, Right, Down.
type Direction int

const (
	// Left moves to column Y-1.
	Left Direction = iota
	// Up moves to row X-1.
	Up
	// Right moves to column Y+1.
	Right
	// Down moves to row X+1.
	Down
)

// Directions lists all four directions in traversal order.
var Directions = [4]Direction{Left, Up, Right, Down}

// deltas[d] is the (dx, dy) offset for direction d.
var deltas = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// Opposite returns the direction pointing back along the same edge.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cell addresses a grid position. X is the row, Y is the column.
type Cell struct {
	X, Y int
}

// Step returns the cell one move away in direction d. It does not bounds-check.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + deltas[d][0], Y: c.Y + deltas[d][1]}
}

// String renders the cell as "X-Y", the format used in trace lines.
func (c Cell) String() string {
	return fmt.Sprintf("%d-%d", c.X, c.Y)
}

// GridGraph is an R×C grid with a fixed node type per cell and a weight
// per cell per direction. It is immutable once built; use Builder.
// types and weights are indexed row-major: X*Cols + Y.
type GridGraph struct {
	rows, cols int
	types      []int
	weights    [][4]float64
}
