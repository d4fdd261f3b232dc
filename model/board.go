package model

// Board holds the current generation and how many steps remain
type Board struct {
	generations int
	rows        int
	columns     int
	grid        *Grid
}

// NewBoard creates a board around grid that will run for the given number of generations
func NewBoard(generations int, grid *Grid) *Board {
	return &Board{
		generations: generations,
		rows:        grid.GetHeight(),
		columns:     grid.GetWidth(),
		grid:        grid,
	}
}

func (b *Board) Rows() int        { return b.rows }
func (b *Board) Columns() int     { return b.columns }
func (b *Board) Generations() int { return b.generations }
func (b *Board) Grid() *Grid      { return b.grid }

// Finished reports whether no generations remain
func (b *Board) Finished() bool {
	return b.generations <= 0
}

// Step replaces the grid with its successor and consumes one generation.
// It is a no-op once the board is finished.
func (b *Board) Step() {
	if b.Finished() {
		return
	}
	b.grid = b.grid.NextGeneration()
	b.generations--
}

// Render returns the text form of the current grid
func (b *Board) Render() string {
	return b.grid.String()
}
