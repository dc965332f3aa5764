package model

import "math/rand/v2"

// NewSource returns a PCG source for Populate. A zero seed picks one at random.
func NewSource(seed int64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(uint64(seed), 0)
}

// Populate overwrites every cell with an independent coin flip from src
func Populate(g *Grid, src rand.Source) {
	for i := range g.cells {
		g.cells[i] = uint8(src.Uint64() & 1)
	}
}
