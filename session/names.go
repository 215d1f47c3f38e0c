package session

import "fmt"

func (s State) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case WON:
		return "WON"
	case LOST:
		return "LOST"
	case QUIT:
		return "QUIT"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

func (c Command) Name() string {
	switch c {
	case CMD_UP:
		return "UP"
	case CMD_DOWN:
		return "DOWN"
	case CMD_LEFT:
		return "LEFT"
	case CMD_RIGHT:
		return "RIGHT"
	case CMD_REVEAL:
		return "REVEAL"
	case CMD_FLAG:
		return "FLAG"
	case CMD_RESET:
		return "RESET"
	case CMD_QUIT:
		return "QUIT"
	default:
		return "N/A"
	}
}
