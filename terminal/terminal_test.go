package terminal

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/sweeper/field"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/session"
)

func pinned(t *testing.T, layout string, cursor model.Position) *session.Session {
	t.Helper()
	f, err := field.Read(strings.NewReader(layout), cursor, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return session.FromField(f)
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		cell model.CellView
		want byte
	}{
		{model.CellView{Visibility: model.Closed}, '.'},
		{model.CellView{Visibility: model.Closed, Bomb: true}, '.'},
		{model.CellView{Visibility: model.Flagged}, '*'},
		{model.CellView{Visibility: model.Open, Bomb: true}, '@'},
		{model.CellView{Visibility: model.Open}, ' '},
		{model.CellView{Visibility: model.Open, Neighbors: 3}, '3'},
		{model.CellView{Visibility: model.Open, Neighbors: 8}, '8'},
	}
	for _, c := range cases {
		assert.Equal(t, string(c.want), string(Glyph(c.cell)))
	}
}

func TestRendererDrawsThenRedraws(t *testing.T) {
	s := pinned(t, "*..\n", model.Position{Row: 0, Col: 1})
	s.Field.OpenAt(0, 1)
	s.Field.ToggleFlagAt(0, 0)

	var out bytes.Buffer
	r := NewRenderer(&out)
	require.NoError(t, r.Draw(s.Snapshot(), "status"))
	assert.Equal(t, " * [1] . \r\nstatus\033[K\r\n", out.String())

	out.Reset()
	require.NoError(t, r.Draw(s.Snapshot(), "again"))
	assert.Equal(t, "\033[2A\033[9D * [1] . \r\nagain\033[K\r\n", out.String())
}

func TestDecode(t *testing.T) {
	got := Decode([]byte("hjkl wasd\rfrq\x03x"))
	want := []session.Command{
		session.CMD_LEFT, session.CMD_DOWN, session.CMD_UP, session.CMD_RIGHT,
		session.CMD_REVEAL,
		session.CMD_UP, session.CMD_LEFT, session.CMD_DOWN, session.CMD_RIGHT,
		session.CMD_REVEAL, session.CMD_FLAG, session.CMD_RESET, session.CMD_QUIT, session.CMD_QUIT,
	}
	assert.Equal(t, want, got)
}

func TestDecodeArrows(t *testing.T) {
	got := Decode([]byte("\x1b[A\x1b[B\x1b[C\x1b[D\x1b[Z\x1b"))
	want := []session.Command{session.CMD_UP, session.CMD_DOWN, session.CMD_RIGHT, session.CMD_LEFT}
	assert.Equal(t, want, got)
	assert.Empty(t, Decode([]byte("xyz")))
}

func TestStatus(t *testing.T) {
	snap := model.Snapshot{Bombs: 20, Flags: 3}
	assert.Equal(t, "bombs: 20  flags: 3  "+help, Status(snap, session.PLAYING))
	assert.True(t, strings.HasSuffix(Status(snap, session.WON), "you won"))
	assert.True(t, strings.HasSuffix(Status(snap, session.LOST), "boom"))
}

func TestRunUntilWin(t *testing.T) {
	s := pinned(t, "*..\n...\n", model.Position{})
	var out bytes.Buffer

	state, err := Run(context.Background(), s, strings.NewReader("ll jhh "), &out)
	require.NoError(t, err)
	assert.Equal(t, session.WON, state)
	assert.Contains(t, out.String(), "you won")
	assert.True(t, strings.HasPrefix(out.String(), ansiHide))
	assert.True(t, strings.HasSuffix(out.String(), ansiShow))
}

func TestRunUntilLoss(t *testing.T) {
	s := pinned(t, "*..\n...\n", model.Position{})
	var out bytes.Buffer

	state, err := Run(context.Background(), s, strings.NewReader("\x1b[B\x1b[A l"), &out)
	require.NoError(t, err)
	assert.Equal(t, session.LOST, state)
	assert.Equal(t, 1, s.ExitCode())
	assert.Contains(t, out.String(), "[@]")
	assert.Contains(t, out.String(), "boom")
	// keys after the losing one are dropped
	assert.Equal(t, model.Position{}, s.Field.Cursor())
}

func TestRunEndOfInputQuits(t *testing.T) {
	s := pinned(t, "*..\n...\n", model.Position{})

	state, err := Run(context.Background(), s, strings.NewReader("l"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, session.QUIT, state)
	assert.Equal(t, model.Position{Row: 0, Col: 1}, s.Field.Cursor())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := pinned(t, "*..\n...\n", model.Position{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := Run(ctx, s, strings.NewReader("l"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, session.PLAYING, state)
}

func TestRunStopsOnCancelWhileWaitingForKey(t *testing.T) {
	s := pinned(t, "*..\n...\n", model.Position{})
	in, feed := io.Pipe()
	defer feed.Close()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := Run(ctx, s, in, &bytes.Buffer{})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
	assert.Equal(t, session.PLAYING, s.State)
}
