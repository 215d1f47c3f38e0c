package field

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

var (
	ErrRaggedLayout = errors.New("layout rows differ in length")
	ErrLayoutRune   = errors.New("layout accepts only '*' and '.'")
)

// Load reads a pinned board from a text file, see Read.
func Load(path string, cursor model.Position, rng *rand.Rand) (f *Field, e error) {
	file, fileErr := os.Open(path)
	if fileErr != nil {
		e = fileErr
		return
	}
	defer file.Close()
	f, e = Read(file, cursor, rng)
	if e != nil {
		log.Printf("failed reading layout %s: %v", path, e)
		e = fmt.Errorf("%s: %w", path, e)
	}
	return
}

// Read builds an already generated field from one line per row, '*' for a
// bomb and '.' for a safe cell. Blank lines and trailing spaces are skipped.
// The bomb density of the layout becomes the percentage used after a reset.
func Read(reader io.Reader, cursor model.Position, rng *rand.Rand) (*Field, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	var cells []model.Cell
	rows, cols, bombs := 0, 0, 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		if rows > 0 && len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", rows, len(line), cols, ErrRaggedLayout)
		}
		cols = len(line)
		for i, char := range line {
			switch char {
			case '*':
				cells = append(cells, model.Cell{Bomb: true})
				bombs++
			case '.':
				cells = append(cells, model.Cell{})
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", rows, i, char, ErrLayoutRune)
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	cfg := model.Config{Rows: rows, Cols: cols}
	if rows > 0 {
		cfg.BombsPercentage = bombs * 100 / (rows * cols)
	}
	f, err := New(cfg, cursor, rng)
	if err != nil {
		return nil, err
	}
	copy(f.cells, cells)
	f.generated = true
	log.Debugf("field.Read %dx%d bombs:%d", rows, cols, bombs)
	return f, nil
}
