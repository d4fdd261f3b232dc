package model

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrRowCountMismatch    = errors.New("invalid input: the number of rows does not match the specified rows")
	ErrColumnCountMismatch = errors.New("invalid input: inconsistent column count in the grid")
	ErrInvalidHeader       = errors.New("invalid input: malformed header")
)

const headerLines = 2

// ParseRows maps raw row strings to cells: x or X is alive, anything else is dead
func ParseRows(rows []string) [][]Cell {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, 0, len(row))
		for _, ch := range row {
			if ch == 'x' || ch == 'X' {
				cells[i] = append(cells[i], Alive)
			} else {
				cells[i] = append(cells[i], Dead)
			}
		}
	}
	return cells
}

// ValidateShape checks the raw rows against the declared dimensions
func ValidateShape(lines []string, columns, rows int) error {
	if len(lines) != rows {
		return errors.Wrapf(ErrRowCountMismatch, "[ValidateShape] got %d rows, want %d", len(lines), rows)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != columns {
			return errors.Wrapf(ErrColumnCountMismatch, "[ValidateShape] row %d has %d columns, want %d", i, n, columns)
		}
	}
	return nil
}

// InputParser turns the text of an input file into a Board. Its collaborators
// are plain function fields so they can be swapped in tests.
type InputParser struct {
	ParseRows     func(rows []string) [][]Cell
	ValidateShape func(lines []string, columns, rows int) error
}

// DefaultInputParser wires ParseRows and ValidateShape
func DefaultInputParser() InputParser {
	return InputParser{
		ParseRows:     ParseRows,
		ValidateShape: ValidateShape,
	}
}

// Parse reads the generation count, the "columns rows" header and the grid rows
func (p InputParser) Parse(content string) (*Board, error) {
	lines := strings.Split(content, "\n")
	// a file ending in a newline leaves one empty trailing element
	if n := len(lines); n > headerLines && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) < headerLines {
		return nil, errors.Wrapf(ErrInvalidHeader, "[Parse] expected %d header lines, got %d", headerLines, len(lines))
	}

	generations, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || generations < 0 {
		return nil, errors.Wrapf(ErrInvalidHeader, "[Parse] bad generation count: %q", lines[0])
	}

	dims := strings.Fields(lines[1])
	if len(dims) != 2 {
		return nil, errors.Wrapf(ErrInvalidHeader, "[Parse] expected \"columns rows\", got: %q", lines[1])
	}
	columns, colErr := strconv.Atoi(dims[0])
	rows, rowErr := strconv.Atoi(dims[1])
	if colErr != nil || rowErr != nil || columns <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidHeader, "[Parse] bad dimensions: %q", lines[1])
	}

	raw := make([]string, 0, len(lines)-headerLines)
	for _, line := range lines[headerLines:] {
		raw = append(raw, strings.ReplaceAll(line, "\r", ""))
	}

	if err = p.ValidateShape(raw, columns, rows); err != nil {
		return nil, err
	}

	return NewBoard(generations, NewGridFromCells(p.ParseRows(raw))), nil
}

// LoadBoard reads the input file at path and parses it with the default parser
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to read file: %+v", path)
	}

	board, err := DefaultInputParser().Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to parse file: %+v", path)
	}
	return board, nil
}
