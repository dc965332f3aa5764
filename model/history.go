package model

// historySize bounds how many recent generations are kept for cycle detection
const historySize = 8

// History remembers hashes of recent generations to spot still lifes and oscillators
type History struct {
	hashes []string
}

// Record adds the grid's state to history, dropping the oldest beyond historySize
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Period returns how many generations ago g last appeared, or 0 if it is not in history.
// A still life reports 1 and a blinker 2.
func (h *History) Period(g *Grid) int {
	current := g.GetGridHash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return len(h.hashes) - i
		}
	}
	return 0
}

// Clear forgets all recorded generations
func (h *History) Clear() {
	h.hashes = h.hashes[:0]
}
