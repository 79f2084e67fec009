// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// gridgraph.GridGraph under partial observability.
//
// The planner is optimistic: a cell whose true type has not been observed
// yet is assumed passable. A wanderer can therefore commit to plans through
// fog and correct them once the terrain is revealed.
//
// Complexity:
//
//   - Time:  O(N log N) for N = R×C cells (4 edges per cell).
//   - Space: O(N) for distance and predecessor slices, O(E) worst-case heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop as soon as the destination is popped from the heap.
//   - Equal distances are ordered by push sequence so plans are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wanderer/gridgraph"
)

// Planner computes optimistic shortest paths. It reads, but never mutates,
// the grid, the override set and the revealed field it was built with, so
// every call observes their current state.
type Planner struct {
	grid      *gridgraph.GridGraph
	overrides TypeSet
	knowledge Knowledge
	options   Options
}

// NewPlanner builds a planner over grid. overrides and knowledge may be nil,
// meaning "no overrides" and "nothing revealed" respectively.
func NewPlanner(grid *gridgraph.GridGraph, overrides TypeSet, knowledge Knowledge, opts ...Option) (*Planner, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Planner{grid: grid, overrides: overrides, knowledge: knowledge, options: cfg}, nil
}

// Traversable applies the planner's rule to c. c must be in bounds.
func (p *Planner) Traversable(c gridgraph.Cell) bool {
	t := p.grid.Type(c)
	switch {
	case t == gridgraph.TypeWall:
		return false
	case t == gridgraph.TypeOpen:
		return true
	case p.overrides != nil && p.overrides.Contains(t):
		return true
	case p.knowledge == nil || !p.knowledge.IsRevealed(c):
		return true
	}

	return false
}

// PlanPath runs Dijkstra from src and returns the predecessor tree. The run
// stops early once dst is settled. An unreachable dst is not an error here;
// check tree.Reached(dst) or call tree.Steps().
func (p *Planner) PlanPath(src, dst gridgraph.Cell) (*PathTree, error) {
	r, err := p.run(src, dst, true)
	if err != nil {
		return nil, err
	}

	return &PathTree{grid: p.grid, source: src, dest: dst, dist: r.dist, parent: r.parent}, nil
}

// ShortestDistance runs the same search without recording predecessors and
// returns the distance to dst, or Unreachable. opts apply to this call only,
// on top of the planner's own options; WithMaxDistance turns it into a
// "can dst be reached within max?" query.
func (p *Planner) ShortestDistance(src, dst gridgraph.Cell, opts ...Option) (float64, error) {
	r, err := p.run(src, dst, false, opts...)
	if err != nil {
		return Unreachable, err
	}

	return r.dist[p.grid.Index(dst)], nil
}

func (p *Planner) run(src, dst gridgraph.Cell, withParents bool, opts ...Option) (*runner, error) {
	// 1) Validate both endpoints.
	if !p.grid.InBounds(src) {
		return nil, fmt.Errorf("%w: source %s", ErrOutOfBounds, src)
	}
	if !p.grid.InBounds(dst) {
		return nil, fmt.Errorf("%w: destination %s", ErrOutOfBounds, dst)
	}

	// 2) Layer per-call options over the planner's.
	cfg := p.options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Seed the source and run the main loop until dst settles.
	r := newRunner(p, cfg, withParents)
	r.init(p.grid.Index(src))
	r.process(p.grid.Index(dst))

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	p       *Planner  // grid, override set and knowledge; read-only here
	maxDist float64   // effective MaxDistance for this run
	dist    []float64 // cell index → best distance from source
	parent  []int     // cell index → predecessor index; nil in distance-only mode
	visited []bool    // cell index → distance is final
	pq      nodePQ    // min-heap of (cell, distance, seq); holds stale duplicates
	seq     int       // next push sequence number
}

func newRunner(p *Planner, cfg Options, withParents bool) *runner {
	n := p.grid.Len()
	r := &runner{
		p:       p,
		maxDist: cfg.MaxDistance,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	if withParents {
		r.parent = make([]int, n)
		for i := range r.parent {
			r.parent[i] = -1
		}
	}

	return r
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init(src int) {
	r.dist[src] = 0
	if r.parent != nil {
		r.parent[src] = src
	}
	heap.Init(&r.pq)
	r.push(src, 0)
}

// process is the core loop: pop the closest unsettled cell, stop if it is
// the destination, otherwise relax its four edges.
func (r *runner) process(dst int) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item; equal distances come out in push order.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale heap entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 3) Everything still queued is at least this far; past the cap, stop.
		if item.dist > r.maxDist {
			break
		}

		// 4) Settle u. Once the destination settles its distance is final.
		r.visited[u] = true
		if u == dst {
			return
		}

		// 5) Relax the four edges leaving u.
		r.relax(u)
	}
}

// relax examines each edge leaving u and improves neighbour distances.
func (r *runner) relax(u int) {
	g := r.p.grid
	uc := g.Coordinate(u)
	var newDist float64
	for _, d := range gridgraph.Directions {
		vc, w, ok := g.Neighbor(uc, d)
		if !ok {
			continue
		}
		v := g.Index(vc)

		// a) Never walk straight back to the cell we came from.
		if r.parent != nil && r.parent[u] == v {
			continue
		}
		// b) Settled cells are final; untraversable cells are never entered.
		if r.visited[v] || !r.p.Traversable(vc) {
			continue
		}

		// c) Candidate distance through u, dropped beyond the cap.
		newDist = r.dist[u] + w
		if newDist > r.maxDist {
			continue
		}
		// d) Strictly better only; the first settled value wins on ties.
		if newDist >= r.dist[v] {
			continue
		}

		// e) Record the improvement and queue v.
		r.dist[v] = newDist
		if r.parent != nil {
			r.parent[v] = u
		}
		r.push(v, newDist)
	}
}

func (r *runner) push(idx int, dist float64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a cell and its distance from the source when pushed.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // distance from source
	seq  int     // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
