// Package gridgraph models the terrain a wanderer moves across: a
// rectangular grid of typed cells joined by weighted orthogonal edges.
//
// What:
//
//   - Cell{X, Y} addresses a position (X = row, Y = column).
//   - Each cell carries a node type: 0 = open, 1 = wall, anything else is a
//     special obstacle class that a planner may or may not treat as passable.
//   - Each cell carries four edge weights (Left, Up, Right, Down). Builder.SetEdge
//     writes both directed halves, so weights are symmetric by construction.
//   - Regions labels wall-separated components.
//
// Why:
//
//   - Planners need O(1) neighbour and weight lookups without a general graph.
//   - Immutability lets the grid be shared by planner, navigator and loaders.
//
// Complexity:
//
//   - Neighbor, Type, Weight, Index: O(1).
//   - Regions:                      O(R×C), Memory: O(R×C).
//   - Builder.Build:                O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      rows or columns ≤ 0.
//   - ErrOutOfBounds:    a cell outside the grid was referenced.
//   - ErrNotAdjacent:    an edge joins non-neighbouring cells.
//   - ErrNegativeWeight: an edge weight below zero.
//   - ErrNegativeType:   a node type below zero.
package gridgraph
