// Package dijkstra_test contains unit tests for the optimistic grid planner.
// These tests validate the traversability rule, both planning modes, wall
// absoluteness under arbitrary overrides, and agreement with an independent
// Bellman-Ford relaxation on fully revealed grids.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wanderer/dijkstra"
	"github.com/katalvlaran/wanderer/gridgraph"
	"github.com/katalvlaran/wanderer/overrides"
	"github.com/katalvlaran/wanderer/visibility"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// gridOf builds a grid from a type matrix with uniform weight w.
func gridOf(t *testing.T, types [][]int, w float64) *gridgraph.GridGraph {
	t.Helper()
	b := gridgraph.NewBuilder(len(types), len(types[0])).FillWeights(w)
	for x, row := range types {
		for y, v := range row {
			b.SetType(gridgraph.Cell{X: x, Y: y}, v)
		}
	}
	gg, err := b.Build()
	require.NoError(t, err)

	return gg
}

// revealAll returns a field with every cell revealed.
func revealAll(gg *gridgraph.GridGraph) *visibility.Field {
	f := visibility.New(gg.Rows(), gg.Cols())
	f.Reveal(gridgraph.Cell{X: 0, Y: 0}, gg.Rows()+gg.Cols())

	return f
}

// bellmanFord relaxes every edge until fixpoint, admitting a cell if its type
// is 0 or overridden. It shares no code with the planner.
func bellmanFord(gg *gridgraph.GridGraph, ov *overrides.Set, src gridgraph.Cell) []float64 {
	n := gg.Len()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[gg.Index(src)] = 0
	admit := func(c gridgraph.Cell) bool {
		t := gg.Type(c)
		return t == 0 || (t != 1 && ov.Contains(t))
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i], 1) {
				continue
			}
			c := gg.Coordinate(i)
			for _, d := range gridgraph.Directions {
				nc := c.Step(d)
				if !gg.InBounds(nc) || !admit(nc) {
					continue
				}
				j := gg.Index(nc)
				if nd := dist[i] + gg.Weight(c, d); nd < dist[j] {
					dist[j] = nd
					changed = true
				}
			}
		}
	}

	return dist
}

// randomGrid returns an n×n grid with random types in [0,4] and random
// integer weights in [0,9], so sums stay exact in float64.
func randomGrid(t *testing.T, rng *rand.Rand, n int) *gridgraph.GridGraph {
	t.Helper()
	b := gridgraph.NewBuilder(n, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := gridgraph.Cell{X: x, Y: y}
			b.SetType(c, rng.Intn(5))
			if y+1 < n {
				b.SetEdge(c, gridgraph.Cell{X: x, Y: y + 1}, float64(rng.Intn(10)))
			}
			if x+1 < n {
				b.SetEdge(c, gridgraph.Cell{X: x + 1, Y: y}, float64(rng.Intn(10)))
			}
		}
	}
	gg, err := b.Build()
	require.NoError(t, err)

	return gg
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewPlanner_NilGrid(t *testing.T) {
	_, err := dijkstra.NewPlanner(nil, nil, nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestPlanner_OutOfBounds(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 0}}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)

	_, err = p.PlanPath(gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 0, Y: 0})
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)
	_, err = p.ShortestDistance(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 5})
	assert.ErrorIs(t, err, dijkstra.ErrOutOfBounds)
}

func TestWithMaxDistance_Negative(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(dijkstra.Unreachable) })
}

// ------------------------------------------------------------------------
// 2. Traversability rule
// ------------------------------------------------------------------------

func TestTraversable(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 1, 2, 3}}, 1)
	ov := overrides.New(3)
	field := visibility.New(1, 4)
	p, err := dijkstra.NewPlanner(gg, ov, field)
	require.NoError(t, err)

	open, wall, gate, bridge := gridgraph.Cell{Y: 0}, gridgraph.Cell{Y: 1}, gridgraph.Cell{Y: 2}, gridgraph.Cell{Y: 3}

	// Nothing revealed: everything but the wall is optimistic-passable.
	assert.True(t, p.Traversable(open))
	assert.False(t, p.Traversable(wall))
	assert.True(t, p.Traversable(gate))
	assert.True(t, p.Traversable(bridge))

	field.Reveal(gate, 1)
	assert.False(t, p.Traversable(gate), "revealed special without override")
	assert.True(t, p.Traversable(bridge), "revealed special with override")
	assert.False(t, p.Traversable(wall), "wall stays impassable once revealed")

	require.ErrorIs(t, ov.Add(gridgraph.TypeWall), overrides.ErrWallType)
	require.NoError(t, ov.Add(2))
	assert.True(t, p.Traversable(gate), "planner observes override changes")
}

// ------------------------------------------------------------------------
// 3. Planning modes
// ------------------------------------------------------------------------

func TestPlanPath_Steps(t *testing.T) {
	gg := gridOf(t, [][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)

	src, dst := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0}
	tree, err := p.PlanPath(src, dst)
	require.NoError(t, err)
	require.True(t, tree.Reached(dst))
	assert.Equal(t, src, tree.Source())
	assert.Equal(t, dst, tree.Destination())
	assert.Equal(t, 6.0, tree.Distance(dst))

	steps, err := tree.Steps()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{
		{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0},
	}, steps)

	parent, ok := tree.Parent(src)
	require.True(t, ok)
	assert.Equal(t, src, parent, "source is its own parent")

	d, err := p.ShortestDistance(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)
}

func TestPlanPath_SameCell(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 0}}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)

	c := gridgraph.Cell{X: 0, Y: 1}
	tree, err := p.PlanPath(c, c)
	require.NoError(t, err)
	steps, err := tree.Steps()
	require.NoError(t, err)
	assert.Empty(t, steps)
	assert.Zero(t, tree.Distance(c))
}

func TestPlanPath_Unreachable(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 1, 0}}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)

	src, dst := gridgraph.Cell{Y: 0}, gridgraph.Cell{Y: 2}
	tree, err := p.PlanPath(src, dst)
	require.NoError(t, err)
	assert.False(t, tree.Reached(dst))
	_, err = tree.Steps()
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, ok := tree.Parent(dst)
	assert.False(t, ok)

	d, err := p.ShortestDistance(src, dst)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// TestPlanPath_Optimistic checks that an unrevealed gate is planned through
// and a revealed one is routed around.
func TestPlanPath_Optimistic(t *testing.T) {
	gg := gridOf(t, [][]int{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	}, 1)
	field := visibility.New(3, 3)
	p, err := dijkstra.NewPlanner(gg, overrides.New(), field)
	require.NoError(t, err)

	src, dst := gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 1, Y: 2}
	d, err := p.ShortestDistance(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d, "through the unrevealed gate")

	field.Reveal(gridgraph.Cell{X: 1, Y: 1}, 0)
	d, err = p.ShortestDistance(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d, "around the revealed gate")
}

// TestPlanPath_TieBreakDeterministic runs the same plan repeatedly on a grid
// full of equal-length routes and expects identical steps.
func TestPlanPath_TieBreakDeterministic(t *testing.T) {
	gg := gridOf(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)

	src, dst := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 3}
	tree, err := p.PlanPath(src, dst)
	require.NoError(t, err)
	first, err := tree.Steps()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		tree, err = p.PlanPath(src, dst)
		require.NoError(t, err)
		again, err := tree.Steps()
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestWithMaxDistance_Caps(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 0, 0, 0}}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)

	d, err := p.ShortestDistance(gridgraph.Cell{Y: 0}, gridgraph.Cell{Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	d, err = p.ShortestDistance(gridgraph.Cell{Y: 0}, gridgraph.Cell{Y: 3})
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestShortestDistance_PerCallCap(t *testing.T) {
	gg := gridOf(t, [][]int{{0, 0, 0, 0}}, 1)
	p, err := dijkstra.NewPlanner(gg, nil, nil)
	require.NoError(t, err)
	src, far := gridgraph.Cell{Y: 0}, gridgraph.Cell{Y: 3}

	d, err := p.ShortestDistance(src, far, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "beyond the per-call cap")

	d, err = p.ShortestDistance(src, far, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d, "a cap equal to the distance still reaches it")

	// The cap applied to those calls only.
	d, err = p.ShortestDistance(src, far)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

// ------------------------------------------------------------------------
// 4. Properties on random grids
// ------------------------------------------------------------------------

// TestShortestDistance_MatchesBellmanFord compares the planner against an
// independent relaxation on fully revealed grids under several override sets.
func TestShortestDistance_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 25; trial++ {
		gg := randomGrid(t, rng, 6)
		ov := overrides.New()
		for _, typ := range []int{2, 3, 4} {
			if rng.Intn(2) == 0 {
				require.NoError(t, ov.Add(typ))
			}
		}
		p, err := dijkstra.NewPlanner(gg, ov, revealAll(gg))
		require.NoError(t, err)

		src := gridgraph.Cell{X: rng.Intn(6), Y: rng.Intn(6)}
		want := bellmanFord(gg, ov, src)
		for i := 0; i < gg.Len(); i++ {
			dst := gg.Coordinate(i)
			got, err := p.ShortestDistance(src, dst)
			require.NoError(t, err)
			if dst == src {
				require.Zero(t, got)
				continue
			}
			require.Equal(t, want[i], got, "trial %d src=%s dst=%s", trial, src, dst)

			tree, err := p.PlanPath(src, dst)
			require.NoError(t, err)
			require.Equal(t, !math.IsInf(want[i], 1), tree.Reached(dst))
		}
	}
}

// TestPlanPath_NeverCrossesWalls plans across random grids with random
// knowledge and every override configuration and asserts no step is a wall.
func TestPlanPath_NeverCrossesWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 25; trial++ {
		gg := randomGrid(t, rng, 7)
		field := visibility.New(7, 7)
		for k := 0; k < 3; k++ {
			field.Reveal(gridgraph.Cell{X: rng.Intn(7), Y: rng.Intn(7)}, rng.Intn(3))
		}
		for mask := 0; mask < 8; mask++ {
			ov := overrides.New()
			for bit, typ := range []int{2, 3, 4} {
				if mask&(1<<bit) != 0 {
					require.NoError(t, ov.Add(typ))
				}
			}
			p, err := dijkstra.NewPlanner(gg, ov, field)
			require.NoError(t, err)

			src := gridgraph.Cell{X: rng.Intn(7), Y: rng.Intn(7)}
			dst := gridgraph.Cell{X: rng.Intn(7), Y: rng.Intn(7)}
			tree, err := p.PlanPath(src, dst)
			require.NoError(t, err)
			steps, err := tree.Steps()
			if err != nil {
				require.ErrorIs(t, err, dijkstra.ErrUnreachable)
				continue
			}
			for _, c := range steps {
				require.NotEqual(t, gridgraph.TypeWall, gg.Type(c), "wall %s on path", c)
			}
		}
	}
}
