package model

import (
	"context"

	"github.com/pkg/errors"
)

// Engine advances generations using the strategy picked at configuration time.
// It holds no simulation state; the zero value advances sequentially into fresh grids.
type Engine struct {
	Parallel bool
	Workers  int
	Pool     *GridPool
}

// Step returns the generation after g. g is never modified; when a pool is set
// the result comes from it and the caller decides when g goes back.
func (e *Engine) Step(ctx context.Context, g *Grid) (*Grid, error) {
	var next *Grid
	if e.Pool != nil {
		next = e.Pool.Get(g.size)
	} else {
		next = newGrid(g.size)
	}

	if e.Parallel {
		if err := advanceParallelInto(ctx, g, next, e.Workers); err != nil {
			GridToPool(next, e.Pool)
			return nil, errors.Wrap(err, "[Engine.Step] parallel advance failed")
		}
		return next, nil
	}

	advanceRows(g, next, 0, g.size)
	return next, nil
}

// Release hands a grid that is no longer displayed back to the pool, if any
func (e *Engine) Release(g *Grid) {
	GridToPool(g, e.Pool)
}
