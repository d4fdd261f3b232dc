package model

import (
	"strings"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1

	aliveGlyph = 'X'
	deadGlyph  = '.'
)

// Grid is a fixed-size rectangle of cells, addressed by row then column
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromCells wraps an already shaped cell matrix. The caller must not
// retain cells after handing them over.
func NewGridFromCells(cells [][]Cell) *Grid {
	g := &Grid{height: len(cells), cells: cells}
	if g.height > 0 {
		g.width = len(cells[0])
	}
	return g
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Set sets a cell, ignoring coordinates outside the grid
func (g *Grid) Set(row, col int, c Cell) {
	if g.inBounds(row, col) {
		g.cells[row][col] = c
	}
}

// Get returns the state of a cell. Anything outside the grid is dead.
func (g *Grid) Get(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Dead
	}
	return g.cells[row][col]
}

// Cells returns a copy of the cell matrix
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.height)
	for i, row := range g.cells {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// CountNeighbors counts living neighbors, clipping at the edges
func (g *Grid) CountNeighbors(row, col int) (count int) {
	for _, off := range rules.NeighborOffsets {
		if g.Get(row+off[0], col+off[1]) == Alive {
			count++
		}
	}
	return
}

// NextCellState computes the state of (row, col) in the following generation.
// It only reads the grid.
func (g *Grid) NextCellState(row, col int) Cell {
	if rules.ApplyConwayRules(g.CountNeighbors(row, col), g.Get(row, col) == Alive) {
		return Alive
	}
	return Dead
}

// NextGeneration builds the successor grid. Every cell is evaluated against
// the current grid, which is left untouched.
func (g *Grid) NextGeneration() *Grid {
	next := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			next.cells[y][x] = g.NextCellState(y, x)
		}
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders one line per row, X for alive and . for dead
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Alive {
				sb.WriteByte(aliveGlyph)
			} else {
				sb.WriteByte(deadGlyph)
			}
		}
	}
	return sb.String()
}
