// Package window shows the simulation in a desktop window. The real host needs
// the ebiten build tag; without it Run reports ErrUnavailable.
package window

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag
var ErrUnavailable = errors.New("window: built without the ebiten tag")

var (
	// CellColor fills alive cells
	CellColor = color.RGBA{R: 255, A: 255}
	// BackgroundColor fills dead cells
	BackgroundColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Options configures the window host
type Options struct {
	Title string
	// Scale is the number of pixels per cell edge
	Scale int
	// TPS is the number of generations advanced per second
	TPS int
	// MaxGenerations closes the window after that many generations; 0 runs until quit
	MaxGenerations int
	// OnFrame is called with every displayed generation before it is drawn
	OnFrame func(generation int, g *model.Grid)
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "life"
	}
	if o.Scale <= 0 {
		o.Scale = 5
	}
	if o.TPS <= 0 {
		o.TPS = 20
	}
	return o
}

// fillCellsRGBA converts row-major cell states into RGBA pixels in buf
func fillCellsRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
