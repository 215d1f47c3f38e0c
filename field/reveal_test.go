package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/sweeper/model"
)

func openCount(f *Field) int {
	_, _, opened := f.Counts()
	return opened
}

func TestNeighborCountsDoNotWrap(t *testing.T) {
	f := mustRead(t, "..*\n...\n*..\n", model.Position{Row: 1, Col: 1})
	assert.Equal(t, 0, f.CountNeighborBombs(0, 0))
	assert.Equal(t, 2, f.CountNeighborBombs(1, 1))
	assert.Equal(t, 1, f.CountNeighborBombs(0, 1))

	f.ToggleFlagAt(0, 2)
	assert.Equal(t, 1, f.CountNeighborFlags(1, 1))
	assert.Equal(t, 0, f.CountNeighborFlags(2, 0))
}

func TestFloodFillOpensEmptyGrid(t *testing.T) {
	f, err := New(model.Config{Rows: 3, Cols: 3}, model.Position{Row: 1, Col: 1}, seeded(1))
	require.NoError(t, err)

	assert.True(t, f.OpenAt(1, 1))
	assert.Equal(t, 9, openCount(f))
	assert.True(t, f.CheckWin())
}

func TestFloodFillStopsAtNumbers(t *testing.T) {
	f := mustRead(t, "....\n....\n...*\n", model.Position{})

	assert.True(t, f.OpenAt(0, 0))
	assert.Equal(t, 11, openCount(f))
	assert.Equal(t, model.Closed, f.Cell(2, 3).Visibility)
	assert.True(t, f.CheckWin())
}

func TestFloodFillLargeGrid(t *testing.T) {
	f, err := New(model.Config{Rows: 500, Cols: 500}, model.Position{Row: 250, Col: 250}, seeded(1))
	require.NoError(t, err)

	assert.True(t, f.Open())
	assert.Equal(t, 500*500, openCount(f))
}

func TestOpenBombLoses(t *testing.T) {
	f := mustRead(t, "*..\n...\n...\n", model.Position{Row: 2, Col: 2})

	assert.False(t, f.OpenAt(0, 0))
	assert.Equal(t, model.Open, f.Cell(0, 0).Visibility)
	assert.Equal(t, 1, openCount(f))
}

func TestOpenNumberedCellOpensOnlyItself(t *testing.T) {
	f := mustRead(t, "*..\n...\n...\n", model.Position{Row: 2, Col: 2})

	assert.True(t, f.OpenAt(1, 1))
	assert.Equal(t, 1, openCount(f))
}

func TestFlagBlocksReveal(t *testing.T) {
	f := mustRead(t, "*..\n...\n", model.Position{})

	f.ToggleFlagAt(0, 0)
	assert.True(t, f.OpenAt(0, 0))
	assert.Equal(t, model.Flagged, f.Cell(0, 0).Visibility)
	assert.Equal(t, 0, openCount(f))
}

func TestToggleFlagTwiceRestoresClosed(t *testing.T) {
	f := mustRead(t, "*..\n...\n", model.Position{})

	f.ToggleFlagAt(1, 2)
	assert.Equal(t, model.Flagged, f.Cell(1, 2).Visibility)
	f.ToggleFlagAt(1, 2)
	assert.Equal(t, model.Closed, f.Cell(1, 2).Visibility)
}

func TestFlagOnOpenCellIsNoop(t *testing.T) {
	f := mustRead(t, "*..\n...\n", model.Position{})

	f.OpenAt(0, 1)
	f.ToggleFlagAt(0, 1)
	assert.Equal(t, model.Open, f.Cell(0, 1).Visibility)
}

func TestChordOpensRemainingNeighbors(t *testing.T) {
	f := mustRead(t, "*.*\n...\n...\n", model.Position{Row: 1, Col: 1})

	require.True(t, f.OpenAt(1, 1))
	require.Equal(t, 2, f.CountNeighborBombs(1, 1))
	f.ToggleFlagAt(0, 0)
	f.ToggleFlagAt(0, 2)

	assert.True(t, f.OpenAt(1, 1))
	assert.Equal(t, 7, openCount(f))
	assert.True(t, f.CheckWin())
}

func TestChordWithWrongFlagDetonates(t *testing.T) {
	f := mustRead(t, "*.*\n...\n...\n", model.Position{Row: 1, Col: 1})

	require.True(t, f.OpenAt(1, 1))
	f.ToggleFlagAt(0, 0)
	f.ToggleFlagAt(0, 1)

	assert.False(t, f.OpenAt(1, 1))
	assert.Equal(t, model.Open, f.Cell(0, 2).Visibility)
}

func TestChordLossKeepsEarlierFloods(t *testing.T) {
	f := mustRead(t, ".....\n.....\n*....\n.....\n", model.Position{Row: 1, Col: 1})

	require.True(t, f.OpenAt(1, 1))
	f.ToggleFlagAt(1, 0)

	// (0,0) comes before the bomb at (2,0) and has nothing around it
	assert.False(t, f.OpenAt(1, 1))
	assert.Equal(t, model.Open, f.Cell(2, 0).Visibility)
	assert.Equal(t, model.Open, f.Cell(0, 4).Visibility)
	assert.Equal(t, model.Open, f.Cell(3, 4).Visibility)
	assert.Equal(t, model.Open, f.Cell(3, 1).Visibility)
	assert.Equal(t, model.Closed, f.Cell(3, 0).Visibility)
	assert.Equal(t, model.Flagged, f.Cell(1, 0).Visibility)
}

func TestChordWithMissingFlagsIsNoop(t *testing.T) {
	f := mustRead(t, "*.*\n...\n...\n", model.Position{Row: 1, Col: 1})

	require.True(t, f.OpenAt(1, 1))
	f.ToggleFlagAt(0, 0)

	assert.True(t, f.OpenAt(1, 1))
	assert.Equal(t, 1, openCount(f))
}

func TestCheckWinNeedsEverySafeCell(t *testing.T) {
	f := mustRead(t, "*..\n", model.Position{Row: 0, Col: 2})

	require.True(t, f.OpenAt(0, 1))
	assert.False(t, f.CheckWin())

	require.True(t, f.OpenAt(0, 2))
	assert.True(t, f.CheckWin())
	assert.Equal(t, model.Closed, f.Cell(0, 0).Visibility)
}

func TestRevealBombs(t *testing.T) {
	f := mustRead(t, "*.*\n...\n", model.Position{Row: 1, Col: 1})

	f.ToggleFlagAt(0, 2)
	f.RevealBombs()
	assert.Equal(t, model.Open, f.Cell(0, 0).Visibility)
	assert.Equal(t, model.Open, f.Cell(0, 2).Visibility)
	assert.Equal(t, model.Closed, f.Cell(1, 1).Visibility)
}
