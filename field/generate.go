package field

import (
	log "github.com/sirupsen/logrus"
)

// BombCount is floor(pct*rows*cols/100) with pct clamped to [0,100]. The
// result never exceeds rows*cols-1 so the cursor cell always stays free.
func BombCount(pct, rows, cols int) int {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	count := pct * rows * cols / 100
	if max := rows*cols - 1; count > max {
		count = max
	}
	return count
}

// EnsureGenerated places the bombs once, never under the cursor.
func (f *Field) EnsureGenerated() {
	if f.generated {
		return
	}
	for i := range f.cells {
		f.cells[i].Bomb = false
	}

	count := BombCount(f.percentage, f.size.Rows, f.size.Cols)
	start := f.index(f.cursor.Row, f.cursor.Col)
	for placed := 0; placed < count; {
		i := f.rng.Intn(len(f.cells))
		if i == start || f.cells[i].Bomb {
			continue
		}
		f.cells[i].Bomb = true
		placed++
	}
	f.generated = true
	log.Debugf("field.EnsureGenerated %dx%d bombs:%d start:%d,%d",
		f.size.Rows, f.size.Cols, count, f.cursor.Row, f.cursor.Col)
}
