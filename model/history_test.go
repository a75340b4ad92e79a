package model

import "testing"

func TestCycleDetector(t *testing.T) {
	t.Run("still life", func(t *testing.T) {
		d := NewCycleDetector(0)
		g := mustGrid(t, 6, cell{1, 1}, cell{1, 2}, cell{2, 1}, cell{2, 2})
		if p := d.Observe(g); p != 0 {
			t.Fatalf("first observation period = %d, want 0", p)
		}
		if p := d.Observe(Advance(g)); p != 1 {
			t.Fatalf("period = %d, want 1", p)
		}
	})

	t.Run("blinker", func(t *testing.T) {
		d := NewCycleDetector(3)
		g := mustGrid(t, 5, cell{2, 1}, cell{2, 2}, cell{2, 3})
		want := []int{0, 0, 2, 2}
		for i, w := range want {
			if p := d.Observe(g); p != w {
				t.Fatalf("generation %d: period = %d, want %d", i, p, w)
			}
			g = Advance(g)
		}
		d.Reset()
		if p := d.Observe(g); p != 0 {
			t.Fatalf("after Reset period = %d, want 0", p)
		}
	})
}
