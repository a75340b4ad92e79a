//go:build ebiten

package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/model"
)

// host adapts the engine to the ebiten.Game interface
type host struct {
	ctx    context.Context
	engine *model.Engine
	grid   *model.Grid
	opts   Options

	img        *ebiten.Image
	buf        []byte
	generation int
	drawn      int
	err        error
}

// Run opens a window and advances one generation per tick until Escape or Q
// is pressed, ctx is done, or MaxGenerations is reached
func Run(ctx context.Context, engine *model.Engine, grid *model.Grid, opts Options) error {
	opts = opts.withDefaults()
	n := grid.Size()
	h := &host{
		ctx:    ctx,
		engine: engine,
		grid:   grid,
		opts:   opts,
		img:    ebiten.NewImage(n, n),
		buf:    make([]byte, 4*n*n),
		drawn:  -1,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(n*opts.Scale, n*opts.Scale)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return h.err
}

// Update handles quit keys and advances the simulation
func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if h.ctx.Err() != nil {
		return ebiten.Termination
	}
	// advance only once the current generation has been shown
	if h.drawn != h.generation {
		return nil
	}
	if h.opts.MaxGenerations > 0 && h.generation >= h.opts.MaxGenerations {
		return ebiten.Termination
	}

	next, err := h.engine.Step(h.ctx, h.grid)
	if err != nil {
		h.err = err
		return ebiten.Termination
	}
	h.engine.Release(h.grid)
	h.grid = next
	h.generation++
	return nil
}

// Draw renders the current generation
func (h *host) Draw(screen *ebiten.Image) {
	if h.drawn != h.generation && h.opts.OnFrame != nil {
		h.opts.OnFrame(h.generation, h.grid)
	}
	h.drawn = h.generation

	fillCellsRGBA(h.buf, h.grid.Cells(), CellColor, BackgroundColor)
	h.img.WritePixels(h.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.opts.Scale), float64(h.opts.Scale))
	screen.DrawImage(h.img, op)
}

// Layout returns the logical screen size
func (h *host) Layout(int, int) (int, int) {
	n := h.grid.Size()
	return n * h.opts.Scale, n * h.opts.Scale
}
