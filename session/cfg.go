package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/zucenko/sweeper/model"
)

const (
	DEFAULT_ROWS       = 10
	DEFAULT_COLS       = 10
	DEFAULT_PERCENTAGE = 20
	MAX_PERCENTAGE     = 50
)

var (
	ErrInvalidRows       = errors.New("rows must be a positive integer")
	ErrInvalidCols       = errors.New("cols must be a positive integer")
	ErrInvalidPercentage = fmt.Errorf("bombs percentage must be an integer within 0..%d", MAX_PERCENTAGE)
	ErrTooManyArgs       = errors.New("expected at most [rows] [cols] [bombs%]")
)

func DefaultConfig() model.Config {
	return model.Config{
		Rows:            DEFAULT_ROWS,
		Cols:            DEFAULT_COLS,
		BombsPercentage: DEFAULT_PERCENTAGE,
	}
}

func Validate(cfg model.Config) error {
	if cfg.Rows <= 0 {
		return fmt.Errorf("rows %d: %w", cfg.Rows, ErrInvalidRows)
	}
	if cfg.Cols <= 0 {
		return fmt.Errorf("cols %d: %w", cfg.Cols, ErrInvalidCols)
	}
	if cfg.BombsPercentage < 0 || cfg.BombsPercentage > MAX_PERCENTAGE {
		return fmt.Errorf("bombs %d%%: %w", cfg.BombsPercentage, ErrInvalidPercentage)
	}
	return nil
}

// ParseArgs reads the optional positional arguments [rows] [cols] [bombs%].
// Missing positions keep their defaults.
func ParseArgs(args []string) (model.Config, error) {
	cfg := DefaultConfig()
	if len(args) > 3 {
		return cfg, fmt.Errorf("%d arguments: %w", len(args), ErrTooManyArgs)
	}

	positions := []struct {
		name  string
		value *int
		err   error
	}{
		{"rows", &cfg.Rows, ErrInvalidRows},
		{"cols", &cfg.Cols, ErrInvalidCols},
		{"bombs", &cfg.BombsPercentage, ErrInvalidPercentage},
	}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return cfg, fmt.Errorf("%s %q: %w", positions[i].name, arg, positions[i].err)
		}
		*positions[i].value = n
	}
	return cfg, Validate(cfg)
}
