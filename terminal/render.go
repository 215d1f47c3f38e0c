package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zucenko/sweeper/model"
)

const (
	ansiUp        = "\033[%dA"
	ansiLeft      = "\033[%dD"
	ansiClearLine = "\033[K"
	ansiHide      = "\033[?25l"
	ansiShow      = "\033[?25h"
	newline       = "\r\n"
)

// Glyph is the middle character of a rendered cell.
func Glyph(c model.CellView) byte {
	switch c.Visibility {
	case model.Flagged:
		return '*'
	case model.Open:
		if c.Bomb {
			return '@'
		}
		if c.Neighbors == 0 {
			return ' '
		}
		return byte('0' + c.Neighbors)
	default:
		return '.'
	}
}

// Renderer draws the grid plus one status line and redraws it in place.
type Renderer struct {
	out   io.Writer
	drawn *model.Size
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Draw prints the grid the first time and overwrites the previous picture on
// every later call.
func (r *Renderer) Draw(snap model.Snapshot, status string) error {
	w := bufio.NewWriter(r.out)
	if r.drawn != nil {
		fmt.Fprintf(w, ansiUp, r.drawn.Rows+1)
		fmt.Fprintf(w, ansiLeft, r.drawn.Cols*3)
	}
	for _, row := range snap.Cells {
		for _, cell := range row {
			left, right := byte(' '), byte(' ')
			if cell.Cursor {
				left, right = '[', ']'
			}
			w.WriteByte(left)
			w.WriteByte(Glyph(cell))
			w.WriteByte(right)
		}
		w.WriteString(newline)
	}
	w.WriteString(status)
	w.WriteString(ansiClearLine)
	w.WriteString(newline)
	if err := w.Flush(); err != nil {
		return err
	}
	size := snap.Size
	r.drawn = &size
	return nil
}
