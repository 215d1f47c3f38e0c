// Package field holds the minefield state machine: the grid, lazy bomb
// placement, reveal with flood fill and chord, flags, the win check and the
// toroidal cursor.
package field

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zucenko/sweeper/model"
)

var (
	ErrInvalidDimension = errors.New("rows and cols must be positive")
	ErrCursorOutOfRange = errors.New("cursor outside the grid")
)

type Field struct {
	size       model.Size
	cells      []model.Cell
	generated  bool
	cursor     model.Position
	percentage int
	rng        *rand.Rand
}

// New allocates an empty field. Bombs are placed on the first reveal or flag.
// A nil rng is replaced by a time seeded one.
func New(cfg model.Config, cursor model.Position, rng *rand.Rand) (*Field, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{
		percentage: cfg.BombsPercentage,
		rng:        rng,
	}
	if err := f.Reset(cfg.Rows, cfg.Cols, cursor); err != nil {
		return nil, err
	}
	return f, nil
}

// Reset rebuilds the grid with every cell closed and bomb free. The bomb
// percentage and rng survive the reset, so does the given cursor.
func (f *Field) Reset(rows, cols int, cursor model.Position) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("field %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	size := model.Size{Rows: rows, Cols: cols}
	if !size.Contains(cursor) {
		return fmt.Errorf("cursor %d,%d in %dx%d: %w", cursor.Row, cursor.Col, rows, cols, ErrCursorOutOfRange)
	}

	n := rows * cols
	if cap(f.cells) >= n {
		f.cells = f.cells[:n]
		for i := range f.cells {
			f.cells[i] = model.Cell{}
		}
	} else {
		f.cells = make([]model.Cell, n)
	}
	f.size = size
	f.cursor = cursor
	f.generated = false
	return nil
}

func (f *Field) Size() model.Size {
	return f.size
}

func (f *Field) Cursor() model.Position {
	return f.cursor
}

func (f *Field) Generated() bool {
	return f.generated
}

func (f *Field) Percentage() int {
	return f.percentage
}

func (f *Field) Cell(row, col int) model.Cell {
	return f.cells[f.index(row, col)]
}

// index panics on coordinates outside the grid: callers only ever pass the
// cursor or a neighbour already checked against the bounds.
func (f *Field) index(row, col int) int {
	if !f.size.Contains(model.Position{Row: row, Col: col}) {
		panic(fmt.Sprintf("field: cell %d,%d outside %dx%d", row, col, f.size.Rows, f.size.Cols))
	}
	return row*f.size.Cols + col
}

// neighbors lists the in-grid Moore neighbours of a cell. Grid edges do not
// wrap here, unlike the cursor.
func (f *Field) neighbors(row, col int) []model.Position {
	around := make([]model.Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			p := model.Position{Row: row + dr, Col: col + dc}
			if f.size.Contains(p) {
				around = append(around, p)
			}
		}
	}
	return around
}
