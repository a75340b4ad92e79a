package model

const defaultHistoryDepth = 5

// CycleDetector remembers the hashes of recent generations to spot still lifes
// and short oscillators
type CycleDetector struct {
	depth   int
	history []string
}

// NewCycleDetector keeps the last depth hashes; depth <= 0 uses 5
func NewCycleDetector(depth int) *CycleDetector {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &CycleDetector{depth: depth}
}

// Observe records g and returns the period of the repeat it closes, or 0 if g
// matches none of the remembered generations
func (d *CycleDetector) Observe(g *Grid) int {
	hash := g.Hash()

	period := 0
	for i := len(d.history) - 1; i >= 0; i-- {
		if d.history[i] == hash {
			period = len(d.history) - i
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > d.depth {
		d.history = d.history[1:]
	}
	return period
}

// Reset forgets every remembered generation
func (d *CycleDetector) Reset() {
	d.history = nil
}
