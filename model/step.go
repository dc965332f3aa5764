package model

import (
	"fmt"

	"github.com/sheikhrachel/go-gol-lut/rules"
)

// Step writes the generation following current into next, overwriting every cell.
//
// Each cell is resolved with one lookup of its composite key (state and
// bounded neighbor sum) instead of branching on the rules. Both grids must
// have the same dimensions and must be distinct; anything else is a caller
// bug and panics.
func Step(current, next *Grid) {
	if current == next {
		panic("model: Step needs distinct current and next grids")
	}
	if !current.SameSize(next) {
		panic(fmt.Sprintf("model: Step grid size mismatch %dx%d -> %dx%d",
			current.width, current.height, next.width, next.height))
	}

	for y := range current.height {
		for x := range current.width {
			i := current.Index(x, y)
			next.cells[i] = rules.Next(current.cells[i], current.NeighborSum(x, y))
		}
	}
}
