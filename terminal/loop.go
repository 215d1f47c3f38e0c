package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/session"
)

const help = "[hjkl] move [space] open [f] flag [r] reset [q] quit"

// Status is the line printed under the grid.
func Status(snap model.Snapshot, state session.State) string {
	line := fmt.Sprintf("bombs: %d  flags: %d  ", snap.Bombs, snap.Flags)
	switch state {
	case session.WON:
		return line + "you won"
	case session.LOST:
		return line + "boom"
	case session.QUIT:
		return line + "bye"
	default:
		return line + help
	}
}

type chunk struct {
	keys []byte
	err  error
}

// readKeys pumps in until a read fails or ctx is done, so a blocked read
// never holds up cancellation.
func readKeys(ctx context.Context, in io.Reader) <-chan chunk {
	reads := make(chan chunk)
	go func() {
		for {
			buf := make([]byte, 16)
			n, err := in.Read(buf)
			select {
			case reads <- chunk{keys: buf[:n], err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return reads
}

// Run reads key presses from in, applies them to s and redraws on out until
// the game is won, lost or quit. End of input counts as quit. Cancelling ctx
// returns at once, even while waiting for a key.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) (session.State, error) {
	r := NewRenderer(out)
	draw := func() error {
		snap := s.Snapshot()
		return r.Draw(snap, Status(snap, s.State))
	}

	io.WriteString(out, ansiHide)
	defer io.WriteString(out, ansiShow)
	if err := draw(); err != nil {
		return s.State, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	reads := readKeys(ctx, in)

	for s.State == session.PLAYING {
		if err := ctx.Err(); err != nil {
			return s.State, err
		}
		var c chunk
		select {
		case <-ctx.Done():
			return s.State, ctx.Err()
		case c = <-reads:
		}

		for _, cmd := range Decode(c.keys) {
			if s.Apply(cmd) != session.PLAYING {
				break
			}
		}
		if errors.Is(c.err, io.EOF) {
			log.Info("terminal.Run input closed")
			s.Apply(session.CMD_QUIT)
		} else if c.err != nil {
			return s.State, c.err
		}
		if len(c.keys) > 0 || s.State != session.PLAYING {
			if err := draw(); err != nil {
				return s.State, err
			}
		}
	}
	return s.State, nil
}
