package rules

const (
	// StateShift moves the current cell state above the neighbor sum bits.
	StateShift = 4

	maxNeighbors = 8
	tableSize    = 1<<StateShift + maxNeighbors + 1
)

/*
transitions maps a composite key to the next cell state.

Indices 0-8 hold dead cells with 0-8 live neighbors, 16-24 hold live cells.
Indices 9-15 are never produced by a valid key and stay zero.
*/
var transitions = buildTable(applyConwayRules)

// applyConwayRules is the B3/S23 predicate: (alive && neighbors == 2) || neighbors == 3
func applyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

func buildTable(rule func(neighbors int, alive bool) bool) (table [tableSize]uint8) {
	for state := uint8(0); state <= 1; state++ {
		for sum := uint8(0); sum <= maxNeighbors; sum++ {
			if rule(int(sum), state == 1) {
				table[Key(state, sum)] = 1
			}
		}
	}
	return
}

// Key combines a cell state (0 or 1) and its live neighbor sum (0-8).
func Key(state, sum uint8) uint8 {
	return state<<StateShift | sum
}

// Next returns the state a cell moves to given its state and live neighbor sum.
func Next(state, sum uint8) uint8 {
	return transitions[Key(state, sum)]
}
