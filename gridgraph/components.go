package gridgraph

// Regions labels every cell with the id of its 4-connected component of
// non-wall cells. Wall cells get -1. Ids are dense, starting at 0, in
// row-major order of each component's first cell.
//
// Node types never change and walls are absolute, so two cells in different
// regions can never be joined by any plan.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for labels and the BFS queue.
func (gg *GridGraph) Regions() []int {
	total := gg.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if gg.types[i0] == TypeWall || labels[i0] != -1 {
			continue
		}
		// BFS to flood the component
		queue = append(queue[:0], i0)
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			for _, d := range Directions {
				v, _, ok := gg.Neighbor(u, d)
				if !ok {
					continue
				}
				vi := gg.Index(v)
				if gg.types[vi] == TypeWall || labels[vi] != -1 {
					continue
				}
				labels[vi] = next
				queue = append(queue, vi)
			}
		}
		next++
	}

	return labels
}
