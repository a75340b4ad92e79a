package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Advance calculates the next generation into a freshly allocated grid.
// g is only read.
func Advance(g *Grid) *Grid {
	next := newGrid(g.size)
	advanceRows(g, next, 0, g.size)
	return next
}

// AdvanceInto calculates the next generation of g into dst, which must have the
// same size and must not be g itself
func AdvanceInto(g, dst *Grid) error {
	if dst == nil || dst.size != g.size {
		return errors.Wrap(ErrInvalidGrid, "[AdvanceInto] destination size mismatch")
	}
	if dst == g || (len(g.cells) > 0 && &dst.cells[0] == &g.cells[0]) {
		return errors.Wrap(ErrInvalidGrid, "[AdvanceInto] destination aliases source")
	}
	advanceRows(g, dst, 0, g.size)
	return nil
}

// AdvanceParallel calculates the next generation by splitting rows into bands,
// one goroutine per band. workers <= 0 uses runtime.NumCPU().
func AdvanceParallel(ctx context.Context, g *Grid, workers int) (*Grid, error) {
	next := newGrid(g.size)
	if err := advanceParallelInto(ctx, g, next, workers); err != nil {
		return nil, err
	}
	return next, nil
}

func advanceParallelInto(ctx context.Context, g, next *Grid, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.size + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			advanceRows(g, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[AdvanceParallel] row band failed")
	}
	return nil
}

// advanceRows writes rows [startRow, endRow) of the next generation into next
func advanceRows(g, next *Grid, startRow, endRow int) {
	n := g.size
	for r := startRow; r < endRow; r++ {
		for c := range n {
			next.cells[r*n+c] = rules.NextState(g.cells[r*n+c], g.CountNeighbors(r, c))
		}
	}
}
