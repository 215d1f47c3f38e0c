package terminal

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var ErrNoTerminal = errors.New("no interactive terminal found, run sweeper from a terminal")

// TTY is the controlling terminal switched into raw mode for single key
// input.
type TTY struct {
	*os.File
	fd    int
	state *term.State
}

// OpenTTY prefers /dev/tty and falls back to stdin when that is a terminal.
func OpenTTY() (*TTY, error) {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		return &TTY{File: f, fd: int(f.Fd())}, nil
	}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		return &TTY{File: os.Stdin, fd: fd}, nil
	}
	return nil, ErrNoTerminal
}

func (t *TTY) MakeRaw() error {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

// Restore puts the terminal back the way MakeRaw found it. Safe to call more
// than once.
func (t *TTY) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	if err != nil {
		log.Warnf("TTY.Restore %v", err)
	}
	t.state = nil
	return err
}

func (t *TTY) Close() error {
	t.Restore()
	if t.File == os.Stdin {
		return nil
	}
	return t.File.Close()
}
