package model

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, n int, alive ...cell) *Grid {
	t.Helper()
	g, err := NewGrid(n)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", n, err)
	}
	for _, c := range alive {
		g.Set(c[0], c[1], true)
	}
	return g
}

func assertAlive(t *testing.T, g *Grid, want ...cell) {
	t.Helper()
	expects := make(map[cell]bool, len(want))
	for _, c := range want {
		expects[c] = true
	}
	for r := range g.Size() {
		for c := range g.Size() {
			if got := g.Get(r, c); got != expects[cell{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, got, expects[cell{r, c}])
			}
		}
	}
}

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := NewGrid(n); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGrid(%d) err = %v, want ErrInvalidGrid", n, err)
		}
	}
}

func TestGetSetWrap(t *testing.T) {
	g := mustGrid(t, 5)
	g.Set(-1, 5, true)
	if !g.Get(4, 0) {
		t.Fatal("Set(-1,5) should address (4,0)")
	}
	if !g.Get(9, -5) {
		t.Fatal("Get(9,-5) should address (4,0)")
	}
	if g.CountLivingCells() != 1 {
		t.Fatalf("CountLivingCells = %d, want 1", g.CountLivingCells())
	}
}

func TestCountNeighborsWrapsAtCorner(t *testing.T) {
	const n = 5
	neighbors := []cell{
		{n - 1, n - 1}, {n - 1, 0}, {0, n - 1},
		{1, 0}, {0, 1}, {1, 1},
		{n - 1, 1}, {1, n - 1},
	}

	for _, nb := range neighbors {
		g := mustGrid(t, n, nb)
		if got := g.CountNeighbors(0, 0); got != 1 {
			t.Errorf("neighbor %v: CountNeighbors(0,0) = %d, want 1", nb, got)
		}
	}

	g := mustGrid(t, n, neighbors...)
	g.Set(2, 2, true)
	g.Set(0, 0, true)
	if got := g.CountNeighbors(0, 0); got != 8 {
		t.Fatalf("CountNeighbors(0,0) = %d, want 8", got)
	}
	if got := g.CountNeighbors(n-1, n-1); got != 3 {
		t.Fatalf("CountNeighbors(%d,%d) = %d, want 3", n-1, n-1, got)
	}
}

func TestRowsAndClone(t *testing.T) {
	g := mustGrid(t, 3, cell{0, 2}, cell{2, 1})
	rows := g.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for _, row := range rows {
		if len(row) != 3 {
			t.Fatalf("row length = %d, want 3", len(row))
		}
	}
	if !rows[0][2] || !rows[2][1] || rows[1][1] {
		t.Fatalf("unexpected rows %v", rows)
	}

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c.Set(1, 1, true)
	if g.Get(1, 1) {
		t.Fatal("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Fatal("Equal ignored a differing cell")
	}
}

func TestHash(t *testing.T) {
	a := mustGrid(t, 4, cell{1, 1})
	b := mustGrid(t, 4, cell{1, 1})
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(2, 2, true)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids share a hash")
	}
}

func TestGridPoolResets(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4)
	g.Set(1, 1, true)
	pool.Put(g)

	got := pool.Get(6)
	if got.Size() != 6 || len(got.Cells()) != 36 {
		t.Fatalf("pooled grid size = %d (%d cells), want 6 (36)", got.Size(), len(got.Cells()))
	}
	if got.CountLivingCells() != 0 {
		t.Fatal("pooled grid was not cleared")
	}
}
