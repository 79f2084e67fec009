// Package dijkstra provides an exact, optimistic-under-uncertainty
// implementation of Dijkstra's shortest-path algorithm on weighted grids.
//
// Overview:
//
//   - The planner searches a gridgraph.GridGraph from a source to a destination,
//     stopping as soon as the destination is settled.
//   - It relies on a min-heap (container/heap) to always expand the next-closest cell.
//   - Traversability is decided per neighbour from the true node type, the current
//     override set and the revealed field: walls never pass, open cells always pass,
//     overridden classes pass, and unrevealed cells are assumed to pass.
//
// Two modes share one runner:
//
//   - PlanPath builds a PathTree (predecessor per cell) for execution.
//   - ShortestDistance skips predecessor bookkeeping; it is the cheap what-if query
//     used while trial-evaluating override candidates, usually with a
//     per-call WithMaxDistance cap.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = R×C; each cell has at most four edges.
//   - Space: O(N) for distance and (optional) predecessor slices.
//   - O(E) worst-case entries in the heap under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        NewPlanner was given a nil grid.
//   - ErrOutOfBounds:    source or destination outside the grid.
//   - ErrUnreachable:    PathTree.Steps on a destination the plan never reached.
//   - ErrBadMaxDistance: panicked by WithMaxDistance itself for negative values.
//
// An unreachable destination is a normal outcome: ShortestDistance returns
// Unreachable (+Inf) and PathTree.Reached reports false.
//
// Thread safety:
//
//   - A Planner reads shared mutable state (override set, revealed field) on every call.
//     Synchronize externally if those are mutated concurrently.
package dijkstra
