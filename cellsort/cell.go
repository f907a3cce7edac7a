package cellsort

// A Cell is one storage element of the sorting array.
type Cell struct {
	Value uint64
	Meta  uint64

	// Age is the admission serial number of the value. Cells that hold
	// their reset contents have age zero and are older than any admitted
	// value.
	Age uint64
}

// nextCells computes the state of every cell after admitting incoming
// while victim leaves the array. Each cell only looks at the broadcast
// rank and at the cells at its own and its neighbour's position, as a row of
// compare-and-select unit cells would.
func nextCells(cells []Cell, incoming Cell, victim int) []Cell {
	rank := 0
	for i, c := range cells {
		if i != victim && c.Value <= incoming.Value {
			rank++
		}
	}

	next := make([]Cell, len(cells))
	for i := range next {
		switch {
		case i < rank:
			next[i] = cells[skip(i, victim)]
		case i == rank:
			next[i] = incoming
		default:
			next[i] = cells[skip(i-1, victim)]
		}
	}

	return next
}

// skip maps the j-th surviving cell to its current position.
func skip(j, victim int) int {
	if j < victim {
		return j
	}

	return j + 1
}
