package field

import (
	"github.com/zucenko/sweeper/model"
)

func (f *Field) CountNeighborBombs(row, col int) int {
	count := 0
	for _, p := range f.neighbors(row, col) {
		if f.cells[f.index(p.Row, p.Col)].Bomb {
			count++
		}
	}
	return count
}

func (f *Field) CountNeighborFlags(row, col int) int {
	count := 0
	for _, p := range f.neighbors(row, col) {
		if f.cells[f.index(p.Row, p.Col)].Visibility == model.Flagged {
			count++
		}
	}
	return count
}

// openAllNeighbors opens every closed neighbour in order, flooding out from
// each one with no bomb around it before moving to the next. Hitting a bomb
// reports false; cells opened before that stay open.
func (f *Field) openAllNeighbors(row, col int) bool {
	for _, p := range f.neighbors(row, col) {
		cell := &f.cells[f.index(p.Row, p.Col)]
		if cell.Visibility != model.Closed {
			continue
		}
		cell.Visibility = model.Open
		if cell.Bomb {
			return false
		}
		if f.CountNeighborBombs(p.Row, p.Col) == 0 {
			f.flood(p)
		}
	}
	return true
}

// flood opens outward from a cell with no bomb around it. Every cell it
// reaches borders such a cell, so it never opens a bomb.
func (f *Field) flood(from model.Position) {
	stack := []model.Position{from}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, p := range f.neighbors(top.Row, top.Col) {
			cell := &f.cells[f.index(p.Row, p.Col)]
			if cell.Visibility != model.Closed {
				continue
			}
			cell.Visibility = model.Open
			if f.CountNeighborBombs(p.Row, p.Col) == 0 {
				stack = append(stack, p)
			}
		}
	}
}

// OpenAt reveals a cell, or chords an already open one. It returns false when
// a bomb went off.
func (f *Field) OpenAt(row, col int) bool {
	i := f.index(row, col)
	f.EnsureGenerated()

	cell := &f.cells[i]
	switch cell.Visibility {
	case model.Closed:
		cell.Visibility = model.Open
		if cell.Bomb {
			return false
		}
		if f.CountNeighborBombs(row, col) == 0 {
			return f.openAllNeighbors(row, col)
		}
		return true
	case model.Open:
		// flags are trusted as bombs
		if f.CountNeighborBombs(row, col) == f.CountNeighborFlags(row, col) {
			return f.openAllNeighbors(row, col)
		}
		return true
	default:
		return true
	}
}

// Open is OpenAt on the cursor cell.
func (f *Field) Open() bool {
	return f.OpenAt(f.cursor.Row, f.cursor.Col)
}

// RevealBombs opens every bomb, for the final picture after a loss.
func (f *Field) RevealBombs() {
	for i := range f.cells {
		if f.cells[i].Bomb {
			f.cells[i].Visibility = model.Open
		}
	}
}
