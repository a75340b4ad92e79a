package rules

import "fmt"

// MaxNeighbors is the number of cells adjacent to any cell on a Moore neighborhood
const MaxNeighbors = 8

// InvariantViolation is the panic value raised when the rule table receives a
// neighbor count that no neighbor count can produce
type InvariantViolation struct {
	Neighbors int
	Alive     bool
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("rules: neighbor count %d outside [0,%d] (alive=%v)", e.Neighbors, MaxNeighbors, e.Alive)
}

/*
NextState applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

	alive, 0-1 neighbors -> dead (underpopulation)
	alive, 2-3 neighbors -> alive
	alive, 4-8 neighbors -> dead (overcrowding)
	dead, 3 neighbors    -> alive (birth)
	dead, otherwise      -> dead

A count outside [0,8] is a bug in neighbor counting and panics with *InvariantViolation.
*/
func NextState(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		panic(&InvariantViolation{Neighbors: neighbors, Alive: alive})
	}
	switch {
	case alive:
		return neighbors == 2 || neighbors == 3
	default:
		return neighbors == 3
	}
}
