package model

import (
	"bytes"
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

const (
	// Dead and Alive are the only valid cell values.
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid is a bounded board stored row-major in a flat slice
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the flat index of (x, y)
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// SameSize reports whether both grids have identical dimensions
func (g *Grid) SameSize(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// Set sets a cell to alive (true) or dead (false); out of range is a no-op
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	if alive {
		g.cells[g.Index(x, y)] = Alive
	} else {
		g.cells[g.Index(x, y)] = Dead
	}
}

// Get returns the state of a cell; cells outside the grid are dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[g.Index(x, y)] == Alive
}

// NeighborSum counts living neighbors of (x, y), clipping the window to the grid
func (g *Grid) NeighborSum(x, y int) uint8 {
	var (
		minX = max(0, x-1)
		maxX = min(g.width-1, x+1)
		minY = max(0, y-1)
		maxY = min(g.height-1, y+1)
		sum  uint8
	)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			sum += row[nx]
		}
	}

	// the window includes the cell itself
	return sum - g.cells[g.Index(x, y)]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(o *Grid) bool {
	return g.SameSize(o) && bytes.Equal(g.cells, o.cells)
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	return fmt.Sprintf("%x", md5.Sum(g.cells))
}

// Validate is a debug check that every cell holds Dead or Alive
func (g *Grid) Validate() error {
	for i, c := range g.cells {
		if c > Alive {
			return errors.Errorf("[Validate] cell %d (x=%d, y=%d) holds %d", i, i%g.width, i/g.width, c)
		}
	}
	return nil
}
