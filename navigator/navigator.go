// Package navigator moves a wanderer across a weighted grid it can only
// partly see.
//
// For each objective the navigator plans an optimistic shortest path,
// walks it while revealing terrain, and replans whenever a cell it had
// only assumed passable comes into sensor range. Objectives may carry an
// advisor offer: a list of obstacle classes, one of which is chosen by trial
// simulation and made permanently passable when the next objective starts.
//
// Per-objective state machine:
//
//	PLAN → TRACE → ADVANCE → DONE
//	             ↘ BLOCKED → PLAN
//
// A Navigator is single-threaded and owns its override set and revealed
// field for its whole lifetime.
package navigator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wanderer/dijkstra"
	"github.com/katalvlaran/wanderer/gridgraph"
	"github.com/katalvlaran/wanderer/overrides"
	"github.com/katalvlaran/wanderer/visibility"
)

// Navigator is the wanderer: its position, knowledge and override set.
type Navigator struct {
	grid      *gridgraph.GridGraph // true terrain; read-only
	regions   []int                // wall-separated region per cell, -1 for walls
	overrides *overrides.Set       // types treated as passable; grows with each offer
	field     *visibility.Field    // cells seen at least once
	planner   *dijkstra.Planner    // reads grid, overrides and field on every call
	radius    int                  // sensor radius

	pos     gridgraph.Cell
	reached int   // objectives completed so far
	pending []int // offer for the next objective; nil when none

	report Reporter
	log    *slog.Logger
}

// New places a wanderer at start with the given sensor radius and reveals
// its surroundings.
func New(grid *gridgraph.GridGraph, start gridgraph.Cell, radius int, opts ...Option) (*Navigator, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Navigator{
		grid:      grid,
		regions:   grid.Regions(),
		overrides: cfg.newOverrides(),
		field:     visibility.New(grid.Rows(), grid.Cols()),
		radius:    radius,
		pos:       start,
		report:    cfg.reporter,
		log:       cfg.logger,
	}
	planner, err := dijkstra.NewPlanner(grid, n.overrides, n.field)
	if err != nil {
		return nil, err
	}
	n.planner = planner
	n.field.Reveal(start, radius)

	return n, nil
}

// Run processes objectives in order. It stops at the first error, returning
// the outcomes gathered so far.
func (n *Navigator) Run(objectives []Objective) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(objectives))
	for i, obj := range objectives {
		out, err := n.Process(obj)
		if err != nil {
			return outcomes, fmt.Errorf("objective #%d: %w", i+1, err)
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// Process handles one objective: it resolves the offer stored by the
// previous objective, if any, travels to the destination, and stores this
// objective's offer for the next call.
func (n *Navigator) Process(obj Objective) (Outcome, error) {
	dst := obj.Destination
	if !n.grid.InBounds(dst) {
		return Impassable, fmt.Errorf("%w: destination %s", ErrOutOfBounds, dst)
	}

	if n.pending != nil {
		n.resolveOffer(n.pending, dst)
	}
	n.pending = nil
	if len(obj.Offer) > 0 {
		n.pending = append([]int(nil), obj.Offer...)
	}

	return n.travel(dst), nil
}

// resolveOffer trial-evaluates each eligible candidate, keeps the first one
// with the strictly smallest distance, reports it and makes it permanent.
// Each trial is capped at the best distance so far: a candidate can only win
// by beating it, so the search never needs to look further.
func (n *Navigator) resolveOffer(offer []int, dst gridgraph.Cell) int {
	chosen, best := NoChoice, dijkstra.Unreachable
	for _, t := range offer {
		d, ok := n.overrides.Try(t, func() float64 {
			d, _ := n.planner.ShortestDistance(n.pos, dst, dijkstra.WithMaxDistance(best))
			return d
		})
		if !ok {
			n.log.Debug("offer candidate skipped", "type", t)
			continue
		}
		n.log.Debug("offer candidate evaluated", "type", t, "distance", d)
		if d < best {
			chosen, best = t, d
		}
	}

	n.report.NumberChosen(chosen)
	if chosen != NoChoice {
		_ = n.overrides.Add(chosen)
	}
	n.log.Debug("offer resolved", "chosen", chosen, "overrides", n.overrides.Types())

	return chosen
}

// travel runs PLAN/TRACE/ADVANCE/BLOCKED until the destination is reached
// or declared impassable.
func (n *Navigator) travel(dst gridgraph.Cell) Outcome {
	// 0) A wall, or a wall-separated region, can never be reached.
	if dst != n.pos && !n.mayReach(dst) {
		n.log.Debug("destination walled off", "from", n.pos, "to", dst)
		n.report.PathImpassable()
		return Impassable
	}

	for {
		// 1) PLAN: optimistic shortest path under current knowledge.
		tree, err := n.planner.PlanPath(n.pos, dst)
		if err != nil {
			n.report.PathImpassable()
			return Impassable
		}
		steps, err := tree.Steps()
		if err != nil {
			n.log.Debug("no plan", "from", n.pos, "to", dst)
			n.report.PathImpassable()
			return Impassable
		}
		if len(steps) == 0 {
			// Already there; the move onto the current cell is still reported.
			steps = []gridgraph.Cell{dst}
		}

		// 2) TRACE: collect cells the plan only assumed passable.
		risks := n.riskCells(steps)
		n.log.Debug("plan", "from", n.pos, "to", dst,
			"distance", tree.Distance(dst), "steps", len(steps), "risks", len(risks))

		// 3) ADVANCE: nothing on the path can turn out blocked; walk it all.
		if len(risks) == 0 {
			for _, c := range steps {
				n.step(c)
			}
			n.reached++
			n.report.ObjectiveReached(n.reached)
			return Reached
		}

		// 4) BLOCKED: walk until a risk cell comes into view, then halt.
		before := n.field.Count()
		observed := n.walk(steps, risks)
		n.report.PathImpassable()

		// 5) Replan only if the halt taught us something; otherwise give up.
		if !observed || n.field.Count() == before {
			n.log.Debug("blocked without new knowledge", "at", n.pos)
			return Impassable
		}
		n.log.Debug("replanning", "at", n.pos, "revealed", n.field.Count())
	}
}

// riskCells returns the intermediate cells of steps whose true type is
// neither open nor overridden. The planner only routes through such cells
// while they are unrevealed.
func (n *Navigator) riskCells(steps []gridgraph.Cell) []gridgraph.Cell {
	var risks []gridgraph.Cell
	for _, c := range steps[:len(steps)-1] {
		t := n.grid.Type(c)
		if t != gridgraph.TypeOpen && !n.overrides.Contains(t) {
			risks = append(risks, c)
		}
	}

	return risks
}

// walk advances along steps until a risk cell is within sensor range of the
// current position. It reports whether that happened before the path ran out.
func (n *Navigator) walk(steps, risks []gridgraph.Cell) bool {
	for _, c := range steps {
		if visibility.AnyWithinRadius(n.pos, risks, n.radius) {
			return true
		}
		n.step(c)
	}

	return false
}

func (n *Navigator) step(c gridgraph.Cell) {
	n.pos = c
	n.field.Reveal(c, n.radius)
	n.report.MovingTo(c)
}

// mayReach is false when dst can never be reached from the current
// position: it is a wall, or a wall-separated region lies between them.
func (n *Navigator) mayReach(dst gridgraph.Cell) bool {
	to := n.regions[n.grid.Index(dst)]
	if to == -1 {
		return false
	}
	from := n.regions[n.grid.Index(n.pos)]

	return from == -1 || from == to
}

// Position returns the wanderer's current cell.
func (n *Navigator) Position() gridgraph.Cell { return n.pos }

// ObjectivesReached returns how many objectives have been completed.
func (n *Navigator) ObjectivesReached() int { return n.reached }

// Radius returns the sensor radius.
func (n *Navigator) Radius() int { return n.radius }

// Overrides returns a read-only view of the types treated as passable.
func (n *Navigator) Overrides() TypeView { return n.overrides }

// IsRevealed reports whether c has entered sensor range at least once.
func (n *Navigator) IsRevealed(c gridgraph.Cell) bool { return n.field.IsRevealed(c) }

// RevealedCount returns the number of revealed cells.
func (n *Navigator) RevealedCount() int { return n.field.Count() }

// PendingOffer returns a copy of the offer stored for the next objective,
// or nil.
func (n *Navigator) PendingOffer() []int {
	if n.pending == nil {
		return nil
	}

	return append([]int(nil), n.pending...)
}
