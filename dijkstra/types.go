// Package dijkstra defines core types and configuration options
// for the optimistic grid planner.
//
// Traversability of a neighbour cell N:
//
//	– type(N) == 1               → never traversable (walls are absolute)
//	– type(N) == 0               → traversable
//	– type(N) in the override set → traversable
//	– N not yet revealed         → traversable (unknown terrain is assumed safe)
//	– otherwise                  → not traversable
//
// Errors (sentinel):
//
//	– ErrNilGrid      if the planner was built without a grid.
//	– ErrOutOfBounds  if source or destination lies outside the grid.
//	– ErrUnreachable  if a path is requested to a cell the plan never reached.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/wanderer/gridgraph"
)

// Unreachable is the distance reported for cells no plan reaches.
var Unreachable = math.Inf(1)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to NewPlanner.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates a source or destination outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: cell out of bounds")

	// ErrUnreachable indicates that the destination was not reached under the
	// current traversability rule.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// TypeSet reports whether a node type is currently treated as passable.
// *overrides.Set satisfies it.
type TypeSet interface {
	Contains(nodeType int) bool
}

// Knowledge reports whether a cell's true type has been observed.
// *visibility.Field satisfies it.
type Knowledge interface {
	IsRevealed(c gridgraph.Cell) bool
}

// Options configures the planner.
//
// MaxDistance – cells whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		// Panic at construction, before the option is ever applied.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Unreachable}
}

// PathTree is the result of PlanPath: for every settled cell, the
// predecessor used to reach it at minimum distance.
type PathTree struct {
	grid   *gridgraph.GridGraph
	source gridgraph.Cell
	dest   gridgraph.Cell
	dist   []float64
	parent []int // -1 when unset; parent[source] == source
}

// Source returns the cell the plan started from.
func (t *PathTree) Source() gridgraph.Cell { return t.source }

// Destination returns the cell the plan was aimed at.
func (t *PathTree) Destination() gridgraph.Cell { return t.dest }

// Reached reports whether c was given a predecessor by the plan.
func (t *PathTree) Reached(c gridgraph.Cell) bool {
	return t.grid.InBounds(c) && t.parent[t.grid.Index(c)] != -1
}

// Distance returns the best distance recorded for c, or Unreachable.
// Only the destination and cells popped before it are guaranteed final.
func (t *PathTree) Distance(c gridgraph.Cell) float64 {
	if !t.grid.InBounds(c) {
		return Unreachable
	}

	return t.dist[t.grid.Index(c)]
}

// Parent returns the predecessor of c. The source is its own parent.
func (t *PathTree) Parent(c gridgraph.Cell) (gridgraph.Cell, bool) {
	if !t.Reached(c) {
		return gridgraph.Cell{}, false
	}

	return t.grid.Coordinate(t.parent[t.grid.Index(c)]), true
}

// Steps returns the forward path from the source to the destination,
// excluding the source and including the destination. It is empty when the
// source is the destination.
func (t *PathTree) Steps() ([]gridgraph.Cell, error) {
	if !t.Reached(t.dest) {
		return nil, ErrUnreachable
	}
	var rev []gridgraph.Cell
	for c := t.dest; c != t.source; {
		rev = append(rev, c)
		c, _ = t.Parent(c)
	}
	steps := make([]gridgraph.Cell, len(rev))
	for i, c := range rev {
		steps[len(rev)-1-i] = c
	}

	return steps, nil
}
