package navigator

import (
	"errors"

	"github.com/katalvlaran/wanderer/gridgraph"
)

// NoChoice is the number reported when an advisor offer had no candidate
// eligible for trial.
const NoChoice = -1

// Sentinel errors returned by the navigator.
var (
	// ErrNilGrid indicates that New was given a nil grid.
	ErrNilGrid = errors.New("navigator: grid is nil")
	// ErrOutOfBounds indicates a start or destination outside the grid.
	ErrOutOfBounds = errors.New("navigator: cell out of bounds")
	// ErrNegativeRadius indicates a sensor radius below zero.
	ErrNegativeRadius = errors.New("navigator: reveal radius must be non-negative")
)

// Objective is one destination request. Offer, when non-empty, is an
// advisor offer that applies to the following objective, not this one.
type Objective struct {
	Destination gridgraph.Cell
	Offer       []int
}

// Outcome is the result of processing one objective.
type Outcome int

const (
	// Reached means the wanderer now occupies the destination.
	Reached Outcome = iota
	// Impassable means travel to the destination was abandoned.
	Impassable
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Reached:
		return "reached"
	case Impassable:
		return "impassable"
	default:
		return "unknown"
	}
}

// Reporter receives the wanderer's events in order. *trace.Writer and
// *trace.Recorder implement it.
type Reporter interface {
	MovingTo(c gridgraph.Cell)
	ObjectiveReached(n int)
	PathImpassable()
	NumberChosen(k int)
}

type nopReporter struct{}

func (nopReporter) MovingTo(gridgraph.Cell) {}
func (nopReporter) ObjectiveReached(int)    {}
func (nopReporter) PathImpassable()         {}
func (nopReporter) NumberChosen(int)        {}

// TypeView is a read-only view of the override set.
type TypeView interface {
	Contains(nodeType int) bool
	Types() []int
	Len() int
}
