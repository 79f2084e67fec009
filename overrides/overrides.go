// Package overrides tracks which obstacle classes a wanderer currently
// treats as passable regardless of a cell's true node type.
//
// The set grows monotonically over a run, except for the short-lived
// insert-measure-remove sequences Try performs while trial-evaluating an
// advisor offer. Only one speculative membership change exists at a time,
// so no transactional machinery is needed.
package overrides

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wanderer/gridgraph"
)

var (
	// ErrWallType indicates an attempt to override the wall type, which is absolute.
	ErrWallType = errors.New("overrides: wall type cannot be overridden")
	// ErrInvalidType indicates a negative node type.
	ErrInvalidType = errors.New("overrides: node type must be non-negative")
)

// Set is a membership set of node types. The zero value is not usable; call New.
type Set struct {
	types mapset.Set[int]
}

// New returns a set containing the given types. Invalid types are skipped.
func New(types ...int) *Set {
	s := &Set{types: mapset.New[int]()}
	for _, t := range types {
		_ = s.Add(t)
	}

	return s
}

// Contains reports whether nodeType is currently treated as passable.
func (s *Set) Contains(nodeType int) bool {
	return s.types.Has(nodeType)
}

// Add makes nodeType passable. Adding a present type is a no-op.
func (s *Set) Add(nodeType int) error {
	if err := validate(nodeType); err != nil {
		return err
	}
	s.types.Put(nodeType)

	return nil
}

// Remove withdraws nodeType. Removing an absent type is a no-op.
func (s *Set) Remove(nodeType int) {
	s.types.Remove(nodeType)
}

// Len returns the number of overridden types.
func (s *Set) Len() int {
	return s.types.Size()
}

// Types returns the overridden types in ascending order.
func (s *Set) Types() []int {
	out := make([]int, 0, s.types.Size())
	s.types.Each(func(t int) {
		out = append(out, t)
	})
	sort.Ints(out)

	return out
}

// Try temporarily adds nodeType, calls measure, and removes it again.
// ok is false, and measure is not called, when nodeType is already present
// or cannot be overridden. The set is unchanged when Try returns.
func (s *Set) Try(nodeType int, measure func() float64) (value float64, ok bool) {
	if validate(nodeType) != nil || s.types.Has(nodeType) {
		return 0, false
	}
	s.types.Put(nodeType)
	defer s.types.Remove(nodeType)

	return measure(), true
}

func validate(nodeType int) error {
	switch {
	case nodeType == gridgraph.TypeWall:
		return ErrWallType
	case nodeType < 0:
		return fmt.Errorf("%w: %d", ErrInvalidType, nodeType)
	}

	return nil
}
