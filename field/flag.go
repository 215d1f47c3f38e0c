package field

import (
	"github.com/zucenko/sweeper/model"
)

func (f *Field) ToggleFlagAt(row, col int) {
	i := f.index(row, col)
	f.EnsureGenerated()

	cell := &f.cells[i]
	switch cell.Visibility {
	case model.Closed:
		cell.Visibility = model.Flagged
	case model.Flagged:
		cell.Visibility = model.Closed
	}
}

func (f *Field) ToggleFlag() {
	f.ToggleFlagAt(f.cursor.Row, f.cursor.Col)
}

// CheckWin is true once every safe cell is open. Bombs may stay closed or
// flagged.
func (f *Field) CheckWin() bool {
	for _, c := range f.cells {
		if !c.Bomb && c.Visibility != model.Open {
			return false
		}
	}
	return true
}

func (f *Field) Counts() (bombs, flags, opened int) {
	for _, c := range f.cells {
		if c.Bomb {
			bombs++
		}
		switch c.Visibility {
		case model.Flagged:
			flags++
		case model.Open:
			opened++
		}
	}
	return
}
