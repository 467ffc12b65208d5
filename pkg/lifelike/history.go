package lifelike

// DefaultHistoryDepth is enough to catch still lifes and the common
// period-2 and period-3 oscillators.
const DefaultHistoryDepth = 5

// History keeps the digests of recent generations for cycle detection.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History remembering up to depth generations.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record appends g to the history, evicting the oldest entry when full.
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Period returns how many generations ago g last appeared, or 0 when it is
// not in the history. A still life reports 1 once recorded.
func (h *History) Period(g *Grid) int {
	cur := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == cur {
			return len(h.hashes) - i
		}
	}
	return 0
}

// Reset forgets every recorded generation.
func (h *History) Reset() { h.hashes = h.hashes[:0] }

// Len returns the number of recorded generations.
func (h *History) Len() int { return len(h.hashes) }
