package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "█"
	gridPosEmpty = " "

	ansiClearHome = "\033[H\033[2J"
)

// Renderer draws one generation. Scale is the renderer's own unit per cell.
type Renderer interface {
	Render(g *Grid) error
}

// TerminalRenderer draws the grid as block characters, Scale characters wide per cell
type TerminalRenderer struct {
	Out   io.Writer
	Scale int
	// ClearScreen moves the cursor home and clears before every frame
	ClearScreen bool
	// Header is printed above the grid when set
	Header func() string
}

// NewTerminalRenderer returns a renderer that clears the screen between frames
func NewTerminalRenderer(out io.Writer, scale int) *TerminalRenderer {
	if scale <= 0 {
		scale = 2
	}
	return &TerminalRenderer{Out: out, Scale: scale, ClearScreen: true}
}

// Render writes the grid to the terminal in one buffered write
func (r *TerminalRenderer) Render(g *Grid) error {
	scale := max(r.Scale, 1)
	block := strings.Repeat(gridPosBlock, scale)
	empty := strings.Repeat(gridPosEmpty, scale)

	w := bufio.NewWriter(r.Out)
	if r.ClearScreen {
		w.WriteString(ansiClearHome)
	}
	if r.Header != nil {
		w.WriteString(r.Header())
		w.WriteByte('\n')
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row*g.size+col] {
				w.WriteString(block)
			} else {
				w.WriteString(empty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Render] failed to write frame")
	}
	return nil
}
