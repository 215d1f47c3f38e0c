package model

import "fmt"

type Visibility int

const (
	Closed Visibility = iota
	Open
	Flagged
)

func (v Visibility) Name() string {
	switch v {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	case Flagged:
		return "FLAGGED"
	default:
		return fmt.Sprintf("n/a:%d", v)
	}
}

type Cell struct {
	Bomb       bool
	Visibility Visibility
}

type Position struct {
	Row, Col int
}

type Size struct {
	Rows, Cols int
}

// Contains reports whether p lies inside a grid of this size.
func (s Size) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Config is the immutable game setup handed to a field at creation.
type Config struct {
	Rows, Cols      int
	BombsPercentage int
}

func (c Config) Size() Size {
	return Size{Rows: c.Rows, Cols: c.Cols}
}
