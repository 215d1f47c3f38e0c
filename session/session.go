package session

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/field"
	"github.com/zucenko/sweeper/model"
)

type State int

const (
	PLAYING State = iota + 1
	WON
	LOST
	QUIT
)

type Command int

const (
	CMD_UP Command = iota + 1
	CMD_DOWN
	CMD_LEFT
	CMD_RIGHT
	CMD_REVEAL
	CMD_FLAG
	CMD_RESET
	CMD_QUIT
)

// Session drives one Field through the commands of a single player.
type Session struct {
	State State
	Field *field.Field
	Moves int
}

// New starts a session on an empty field with the cursor in the top left
// corner.
func New(cfg model.Config, rng *rand.Rand) (*Session, error) {
	f, err := field.New(cfg, model.Position{}, rng)
	if err != nil {
		return nil, err
	}
	return FromField(f), nil
}

// FromField wraps an existing field, e.g. one read from a layout file.
func FromField(f *field.Field) *Session {
	return &Session{State: PLAYING, Field: f}
}

// Apply runs one command and returns the resulting state. Once the game is
// won or lost only CMD_RESET has an effect.
func (s *Session) Apply(cmd Command) State {
	log.Debugf("Session.Apply %s state:%s", cmd.Name(), s.State.Name())
	if s.State != PLAYING {
		if cmd == CMD_RESET {
			s.reset()
		}
		return s.State
	}

	switch cmd {
	case CMD_UP:
		s.Field.MoveUp()
	case CMD_DOWN:
		s.Field.MoveDown()
	case CMD_LEFT:
		s.Field.MoveLeft()
	case CMD_RIGHT:
		s.Field.MoveRight()
	case CMD_REVEAL:
		s.Moves++
		if !s.Field.Open() {
			s.Field.RevealBombs()
			s.setState(LOST)
		} else if s.Field.CheckWin() {
			s.setState(WON)
		}
	case CMD_FLAG:
		s.Moves++
		s.Field.ToggleFlag()
	case CMD_RESET:
		s.reset()
	case CMD_QUIT:
		s.setState(QUIT)
	default:
		log.Warnf("Session.Apply unknown command %d", cmd)
	}
	return s.State
}

// ApplyAt moves the cursor to p first, for pointer driven frontends.
func (s *Session) ApplyAt(p model.Position, cmd Command) State {
	if s.State == PLAYING {
		s.Field.MoveTo(p)
	}
	return s.Apply(cmd)
}

func (s *Session) Snapshot() model.Snapshot {
	return s.Field.Snapshot()
}

// ExitCode maps the final state to the process exit status.
func (s *Session) ExitCode() int {
	switch s.State {
	case LOST:
		return 1
	case PLAYING, WON, QUIT:
		return 0
	default:
		panic(s.State)
	}
}

func (s *Session) reset() {
	size := s.Field.Size()
	if err := s.Field.Reset(size.Rows, size.Cols, s.Field.Cursor()); err != nil {
		// size and cursor come from a live field
		log.Errorf("Session.reset %v", err)
		return
	}
	s.Moves = 0
	s.setState(PLAYING)
}

func (s *Session) setState(state State) {
	if s.State != state {
		log.Infof("Session state %s -> %s after %d moves", s.State.Name(), state.Name(), s.Moves)
	}
	s.State = state
}
