package model

import "testing"

// scriptedSource replays a fixed sequence of draws
type scriptedSource struct {
	draws []uint64
	n     int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.draws[s.n%len(s.draws)]
	s.n++
	return v
}

func TestPopulateGolden(t *testing.T) {
	g := NewGrid(3, 2)
	src := &scriptedSource{draws: []uint64{1, 2, 3, 4, 5, 6}}

	Populate(g, src)

	if src.n != g.Len() {
		t.Fatalf("Populate drew %d values for %d cells", src.n, g.Len())
	}
	const want = "0 - 0 \n- 0 - \n"
	if got := g.String(); got != want {
		t.Fatalf("populated grid:\n%s\nwant:\n%s", got, want)
	}
}

func TestPopulateOverwritesEveryCell(t *testing.T) {
	g := NewGrid(4, 4)
	for i := range g.cells {
		g.cells[i] = Alive
	}
	Populate(g, &scriptedSource{draws: []uint64{0xfffffffffffffffe}})
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("%d cells survived an all-dead population", n)
	}
}

func TestNewSourceDeterministic(t *testing.T) {
	a, b := NewGrid(25, 25), NewGrid(25, 25)
	Populate(a, NewSource(42))
	Populate(b, NewSource(42))
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}

	Populate(b, NewSource(43))
	if a.Equal(b) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestPopulateRoughlyHalfAlive(t *testing.T) {
	g := NewGrid(100, 100)
	Populate(g, NewSource(0))
	if n := g.CountLivingCells(); n < 4500 || n > 5500 {
		t.Fatalf("%d of %d cells alive, expected about half", n, g.Len())
	}
}
