package terminal

import (
	"github.com/zucenko/sweeper/session"
)

const keyEscape = 0x1b

// ctrl-c arrives as a byte in raw mode
var keys = map[byte]session.Command{
	'k':    session.CMD_UP,
	'w':    session.CMD_UP,
	'j':    session.CMD_DOWN,
	's':    session.CMD_DOWN,
	'h':    session.CMD_LEFT,
	'a':    session.CMD_LEFT,
	'l':    session.CMD_RIGHT,
	'd':    session.CMD_RIGHT,
	' ':    session.CMD_REVEAL,
	'\r':   session.CMD_REVEAL,
	'\n':   session.CMD_REVEAL,
	'f':    session.CMD_FLAG,
	'r':    session.CMD_RESET,
	'q':    session.CMD_QUIT,
	'\x03': session.CMD_QUIT,
}

var arrows = map[byte]session.Command{
	'A': session.CMD_UP,
	'B': session.CMD_DOWN,
	'C': session.CMD_RIGHT,
	'D': session.CMD_LEFT,
}

// Decode turns raw bytes read from the terminal into commands. Arrow keys
// arrive as ESC [ A..D; anything unknown is dropped.
func Decode(buf []byte) []session.Command {
	var cmds []session.Command
	for i := 0; i < len(buf); i++ {
		if buf[i] == keyEscape {
			if i+2 < len(buf) && buf[i+1] == '[' {
				if cmd, ok := arrows[buf[i+2]]; ok {
					cmds = append(cmds, cmd)
				}
				i += 2
			}
			continue
		}
		if cmd, ok := keys[buf[i]]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
