package model

import "testing"

func TestHistoryPeriod(t *testing.T) {
	t.Run("still life", func(t *testing.T) {
		var h History
		b := NewBuffers(4, 4)
		setAlive(b.Current, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

		h.Record(b.Current)
		b.Advance()
		if p := h.Period(b.Current); p != 1 {
			t.Fatalf("block period = %d, want 1", p)
		}
	})

	t.Run("blinker", func(t *testing.T) {
		var h History
		b := NewBuffers(5, 5)
		setAlive(b.Current, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

		h.Record(b.Current)
		b.Advance()
		if p := h.Period(b.Current); p != 0 {
			t.Fatalf("period after one step = %d, want 0", p)
		}
		h.Record(b.Current)
		b.Advance()
		if p := h.Period(b.Current); p != 2 {
			t.Fatalf("blinker period = %d, want 2", p)
		}
	})

	t.Run("bounded and clearable", func(t *testing.T) {
		var h History
		g := NewGrid(4, 4)
		h.Record(g)
		for i := range historySize {
			other := NewGrid(4, 4)
			other.Set(i%4, i/4, true)
			h.Record(other)
		}
		if len(h.hashes) != historySize {
			t.Fatalf("history holds %d entries, want %d", len(h.hashes), historySize)
		}
		if p := h.Period(g); p != 0 {
			t.Fatalf("evicted grid still reported with period %d", p)
		}
		h.Clear()
		if p := h.Period(NewGrid(4, 4)); p != 0 {
			t.Fatalf("cleared history reported period %d", p)
		}
	})
}
