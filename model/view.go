package model

// Snapshot is what a renderer needs to draw the whole grid once.
type Snapshot struct {
	Size      Size
	Cursor    Position
	Generated bool
	Bombs     int
	Flags     int
	Cells     [][]CellView
}

type CellView struct {
	Cursor     bool
	Visibility Visibility
	Bomb       bool
	// Neighbors is only filled for open cells.
	Neighbors int
}

func (s Snapshot) At(p Position) CellView {
	return s.Cells[p.Row][p.Col]
}
