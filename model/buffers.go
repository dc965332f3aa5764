package model

import "math/rand/v2"

// Buffers owns the current generation and the scratch grid the next one is written to.
// Both grids live for the whole run; advancing swaps their roles instead of copying.
type Buffers struct {
	Current *Grid
	Next    *Grid
}

// NewBuffers allocates both generations with the same dimensions
func NewBuffers(width, height int) *Buffers {
	return &Buffers{
		Current: NewGrid(width, height),
		Next:    NewGrid(width, height),
	}
}

// Swap exchanges the current and next roles
func (b *Buffers) Swap() {
	b.Current, b.Next = b.Next, b.Current
}

// Advance computes the next generation and makes it current
func (b *Buffers) Advance() {
	Step(b.Current, b.Next)
	b.Swap()
}

// Reset repopulates the current generation in place
func (b *Buffers) Reset(src rand.Source) {
	Populate(b.Current, src)
}
