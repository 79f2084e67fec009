// Package wanderer is a navigation agent for weighted grids under partial
// observability.
//
// The agent only learns a cell's true type once that cell has been inside its
// sensor radius. It plans optimistically through fog, walks the plan while
// revealing terrain, and replans when a hidden obstacle on the route comes
// into view. Between objectives it may accept one obstacle type from an
// advisor offer, picked by trial planning, and treat that type as passable
// from then on.
//
// Everything is organised under subpackages:
//
//	gridgraph/    immutable R×C grid: node types, 4-direction edge weights, wall-separated regions
//	overrides/    set of obstacle types treated as passable, with trial insert/measure/remove
//	visibility/   monotonic revealed-cell field with Euclidean sensor radius
//	dijkstra/     shortest paths under the optimistic traversability rule
//	navigator/    per-objective plan/trace/advance/blocked loop and advisor offers
//	trace/        the event log: "Moving to", "Objective reached", "impassable", "chosen"
//	loader/       parsers for node, edge and objective files
//	cmd/wanderer  command-line entry point
//
// Quick start:
//
//	grid, _ := loader.ReadGrid(nodes, edges)
//	sc, _ := loader.ReadObjectives(objectives)
//	nav, _ := navigator.New(grid, sc.Start, sc.Radius,
//		navigator.WithReporter(trace.NewWriter(os.Stdout)))
//	outcomes, _ := nav.Run(sc.Objectives)
package wanderer
