package field

import (
	"github.com/zucenko/sweeper/model"
)

// Cursor moves wrap around the grid edges.

func (f *Field) MoveUp() {
	f.cursor.Row = (f.cursor.Row + f.size.Rows - 1) % f.size.Rows
}

func (f *Field) MoveDown() {
	f.cursor.Row = (f.cursor.Row + 1) % f.size.Rows
}

func (f *Field) MoveLeft() {
	f.cursor.Col = (f.cursor.Col + f.size.Cols - 1) % f.size.Cols
}

func (f *Field) MoveRight() {
	f.cursor.Col = (f.cursor.Col + 1) % f.size.Cols
}

// MoveTo jumps straight to p, which must be inside the grid.
func (f *Field) MoveTo(p model.Position) {
	f.index(p.Row, p.Col)
	f.cursor = p
}
