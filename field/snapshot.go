package field

import (
	"github.com/zucenko/sweeper/model"
)

func (f *Field) Snapshot() model.Snapshot {
	bombs, flags, _ := f.Counts()
	if !f.generated {
		bombs = BombCount(f.percentage, f.size.Rows, f.size.Cols)
	}
	snap := model.Snapshot{
		Size:      f.size,
		Cursor:    f.cursor,
		Generated: f.generated,
		Bombs:     bombs,
		Flags:     flags,
		Cells:     make([][]model.CellView, f.size.Rows),
	}
	for r := 0; r < f.size.Rows; r++ {
		snap.Cells[r] = make([]model.CellView, f.size.Cols)
		for c := 0; c < f.size.Cols; c++ {
			cell := f.cells[f.index(r, c)]
			view := model.CellView{
				Cursor:     f.cursor.Row == r && f.cursor.Col == c,
				Visibility: cell.Visibility,
				Bomb:       cell.Bomb,
			}
			if cell.Visibility == model.Open {
				view.Neighbors = f.CountNeighborBombs(r, c)
			}
			snap.Cells[r][c] = view
		}
	}
	return snap
}
