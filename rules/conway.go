package rules

// NeighborOffsets lists the (row, column) deltas of the 8 cells surrounding a cell.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

const (
	minSurvive = 2
	maxSurvive = 3
	birth      = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors and dies otherwise.
A dead cell becomes alive with exactly 3 live neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= minSurvive && neighbors <= maxSurvive
	}
	return neighbors == birth
}
