package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when a pattern coordinate does not fit the requested grid size
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidGrid is returned for non-positive sizes, unknown policies and mismatched grids
	ErrInvalidGrid = errors.New("invalid grid")
)

// Grid is a square toroidal board stored row-major in a single flat buffer
type Grid struct {
	size  int
	cells []bool
}

// NewGrid creates an empty (all dead) grid with side length n
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "[NewGrid] size must be positive, got %d", n)
	}
	return &Grid{size: n, cells: make([]bool, n*n)}, nil
}

// newGrid is NewGrid for sizes already known to be valid
func newGrid(n int) *Grid {
	return &Grid{size: n, cells: make([]bool, n*n)}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resizes the grid to n×n and kills every cell
func (g *Grid) Reset(n int) {
	g.size = n
	if cap(g.cells) < n*n {
		g.cells = make([]bool, n*n)
		return
	}
	g.cells = g.cells[:n*n]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// wrap maps any integer onto [0, size)
func (g *Grid) wrap(i int) int {
	i %= g.size
	if i < 0 {
		i += g.size
	}
	return i
}

func (g *Grid) index(row, col int) int {
	return g.wrap(row)*g.size + g.wrap(col)
}

// Set sets a cell to alive (true) or dead (false); coordinates wrap around the torus
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// Get returns the state of a cell; coordinates wrap around the torus
func (g *Grid) Get(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Cells exposes the row-major backing buffer. Callers must not modify it.
func (g *Grid) Cells() []bool {
	return g.cells
}

// Rows returns a nested copy of the grid, one slice per row
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.size)
	for r := range g.size {
		rows[r] = make([]bool, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.size)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// CountNeighbors counts living cells among the eight neighbors of (row, col),
// wrapping across every edge
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		base := g.wrap(row+dr) * g.size
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			if g.cells[base+g.wrap(col+dc)] {
				count++
			}
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
