package gridgraph

import "fmt"

// Builder accumulates node types and edge weights for a GridGraph.
// The first error encountered is kept and returned by Build; later calls
// after an error are ignored.
type Builder struct {
	rows, cols int
	types      []int
	weights    [][4]float64
	err        error
}

// NewBuilder starts a rows×cols grid. All cells are TypeOpen and all
// in-grid edges weigh zero until set.
// Complexity: O(R×C).
func NewBuilder(rows, cols int) *Builder {
	b := &Builder{rows: rows, cols: cols}
	if rows <= 0 || cols <= 0 {
		b.err = ErrEmptyGrid
		return b
	}
	b.types = make([]int, rows*cols)
	b.weights = make([][4]float64, rows*cols)

	return b
}

// SetType assigns node type t to cell c.
func (b *Builder) SetType(c Cell, t int) *Builder {
	if b.err != nil {
		return b
	}
	if !b.inBounds(c) {
		b.err = fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, b.rows, b.cols)
		return b
	}
	if t < 0 {
		b.err = fmt.Errorf("%w: %s type=%d", ErrNegativeType, c, t)
		return b
	}
	b.types[b.index(c)] = t

	return b
}

// SetEdge assigns weight w to the edge between adjacent cells a and b in
// both directions.
func (b *Builder) SetEdge(from, to Cell, w float64) *Builder {
	if b.err != nil {
		return b
	}
	if !b.inBounds(from) || !b.inBounds(to) {
		b.err = fmt.Errorf("%w: edge %s,%s in %dx%d grid", ErrOutOfBounds, from, to, b.rows, b.cols)
		return b
	}
	if w < 0 {
		b.err = fmt.Errorf("%w: edge %s,%s weight=%g", ErrNegativeWeight, from, to, w)
		return b
	}
	for _, d := range Directions {
		if from.Step(d) != to {
			continue
		}
		b.weights[b.index(from)][d] = w
		b.weights[b.index(to)][d.Opposite()] = w
		return b
	}
	b.err = fmt.Errorf("%w: %s,%s", ErrNotAdjacent, from, to)

	return b
}

// FillWeights sets every in-grid edge to weight w.
// Complexity: O(R×C).
func (b *Builder) FillWeights(w float64) *Builder {
	if b.err != nil {
		return b
	}
	if w < 0 {
		b.err = fmt.Errorf("%w: weight=%g", ErrNegativeWeight, w)
		return b
	}
	for x := 0; x < b.rows; x++ {
		for y := 0; y < b.cols; y++ {
			c := Cell{X: x, Y: y}
			for _, d := range Directions {
				if b.inBounds(c.Step(d)) {
					b.weights[b.index(c)][d] = w
				}
			}
		}
	}

	return b
}

// Build returns the finished grid, or the first error recorded.
// The builder's storage is copied, so the builder may keep being used.
// Complexity: O(R×C).
func (b *Builder) Build() (*GridGraph, error) {
	if b.err != nil {
		return nil, b.err
	}
	types := make([]int, len(b.types))
	copy(types, b.types)
	weights := make([][4]float64, len(b.weights))
	copy(weights, b.weights)

	return &GridGraph{rows: b.rows, cols: b.cols, types: types, weights: weights}, nil
}

func (b *Builder) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.rows && c.Y >= 0 && c.Y < b.cols
}

func (b *Builder) index(c Cell) int {
	return c.X*b.cols + c.Y
}

// Rows returns the number of rows.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the number of columns.
func (gg *GridGraph) Cols() int { return gg.cols }

// Len returns the number of cells, Rows×Cols.
func (gg *GridGraph) Len() int { return gg.rows * gg.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.rows && c.Y >= 0 && c.Y < gg.cols
}

// Type returns the node type of c. c must be in bounds.
func (gg *GridGraph) Type(c Cell) int {
	return gg.types[gg.Index(c)]
}

// Weight returns the weight of the edge leaving c in direction d,
// regardless of whether the neighbour exists. c must be in bounds.
func (gg *GridGraph) Weight(c Cell, d Direction) float64 {
	return gg.weights[gg.Index(c)][d]
}

// Neighbor returns the cell adjacent to c in direction d and the weight of
// the edge joining them. ok is false if no such neighbour exists.
// Complexity: O(1).
func (gg *GridGraph) Neighbor(c Cell, d Direction) (n Cell, w float64, ok bool) {
	if !gg.InBounds(c) {
		return Cell{}, 0, false
	}
	n = c.Step(d)
	if !gg.InBounds(n) {
		return Cell{}, 0, false
	}

	return n, gg.weights[gg.Index(c)][d], true
}

// Index maps c to its row-major index: X*Cols + Y.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.X*gg.cols + c.Y
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx / gg.cols, Y: idx % gg.cols}
}
