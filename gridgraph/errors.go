package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotAdjacent indicates an edge between cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("gridgraph: edge weight must be non-negative")
	// ErrNegativeType indicates a node type below zero.
	ErrNegativeType = errors.New("gridgraph: node type must be non-negative")
)
