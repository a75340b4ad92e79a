package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy selects how the first generation is populated
type Policy int

const (
	PolicyRandom Policy = iota
	PolicyGlider
	PolicyInfinite
)

var policyNames = map[Policy]string{
	PolicyRandom:   "random",
	PolicyGlider:   "glider",
	PolicyInfinite: "infinite",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePolicy maps a configuration name onto a Policy
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidGrid, "[ParsePolicy] unknown pattern %q", name)
}

// cell is a [row, col] coordinate of a literal pattern
type cell [2]int

// gliderCells travels down-right by one cell every four generations
var gliderCells = []cell{
	{10, 11},
	{11, 12},
	{12, 10}, {12, 11}, {12, 12},
}

// infiniteCells is a small seed that grows without bound on an unbounded plane
var infiniteCells = []cell{
	{11, 11}, {11, 12}, {11, 13}, {11, 15},
	{12, 11},
	{13, 14}, {13, 15},
	{14, 12}, {14, 13}, {14, 15},
	{15, 11}, {15, 13}, {15, 15}, {15, 19},
}

// MakeInitialGrid builds the first generation of side n using policy.
// src is only consulted by PolicyRandom.
func MakeInitialGrid(policy Policy, n int, src BoolSource) (*Grid, error) {
	switch policy {
	case PolicyRandom:
		return Random(n, src)
	case PolicyGlider:
		return Glider(n)
	case PolicyInfinite:
		return Infinite(n)
	default:
		return nil, errors.Wrapf(ErrInvalidGrid, "[MakeInitialGrid] unknown policy %d", int(policy))
	}
}

// Random fills every cell with an independent draw from src
func Random(n int, src BoolSource) (*Grid, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidGrid, "[Random] nil random source")
	}
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = src.Bool()
	}
	return g, nil
}

// Glider places a single glider on an otherwise dead grid
func Glider(n int) (*Grid, error) {
	return fromCells("glider", n, gliderCells)
}

// Infinite places the infinite-growth seed on an otherwise dead grid
func Infinite(n int) (*Grid, error) {
	return fromCells("infinite", n, infiniteCells)
}

func fromCells(name string, n int, cells []cell) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if c[0] >= n || c[1] >= n {
			return nil, errors.Wrapf(ErrOutOfRange,
				"[%s] cell (%d,%d) does not fit a %dx%d grid", name, c[0], c[1], n, n)
		}
		g.cells[c[0]*n+c[1]] = true
	}
	return g, nil
}
