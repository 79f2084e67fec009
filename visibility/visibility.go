// Package visibility records which grid cells a wanderer has observed.
//
// A cell becomes revealed once it lies within the sensor radius of any
// position the wanderer has occupied. Revealed cells never become
// unrevealed, so the field only grows over a run.
package visibility

import "github.com/katalvlaran/wanderer/gridgraph"

// Field is an R×C revealed bitmap, indexed row-major like gridgraph.
type Field struct {
	rows, cols int
	revealed   []bool
	count      int
}

// New returns a field with every cell unrevealed.
func New(rows, cols int) *Field {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Field{rows: rows, cols: cols, revealed: make([]bool, rows*cols)}
}

// WithinRadius reports whether c lies within Euclidean distance radius of p.
// Integer coordinates make dx²+dy² ≤ r² exact, with no square root.
func WithinRadius(p, c gridgraph.Cell, radius int) bool {
	if radius < 0 {
		return false
	}
	dx, dy := p.X-c.X, p.Y-c.Y

	return dx*dx+dy*dy <= radius*radius
}

// Reveal marks every in-grid cell within radius of p as revealed and returns
// how many cells were newly revealed. Calling it again with the same
// arguments reveals nothing new.
// Complexity: O(r²).
func (f *Field) Reveal(p gridgraph.Cell, radius int) int {
	if radius < 0 {
		return 0
	}
	added := 0
	for x := p.X - radius; x <= p.X+radius; x++ {
		if x < 0 || x >= f.rows {
			continue
		}
		for y := p.Y - radius; y <= p.Y+radius; y++ {
			if y < 0 || y >= f.cols {
				continue
			}
			c := gridgraph.Cell{X: x, Y: y}
			if !WithinRadius(p, c, radius) {
				continue
			}
			i := x*f.cols + y
			if !f.revealed[i] {
				f.revealed[i] = true
				added++
			}
		}
	}
	f.count += added

	return added
}

// IsRevealed reports whether c has been observed. Out-of-grid cells report false.
func (f *Field) IsRevealed(c gridgraph.Cell) bool {
	if c.X < 0 || c.X >= f.rows || c.Y < 0 || c.Y >= f.cols {
		return false
	}

	return f.revealed[c.X*f.cols+c.Y]
}

// Count returns the number of revealed cells.
func (f *Field) Count() int {
	return f.count
}

// AnyWithinRadius reports whether any of cells lies within radius of p.
func AnyWithinRadius(p gridgraph.Cell, cells []gridgraph.Cell, radius int) bool {
	for _, c := range cells {
		if WithinRadius(p, c, radius) {
			return true
		}
	}

	return false
}
