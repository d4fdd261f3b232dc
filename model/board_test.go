package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardStep(t *testing.T) {
	board, err := DefaultInputParser().Parse(sampleInput)
	require.NoError(t, err)
	first := board.Grid()

	board.Step()
	assert.Equal(t, 2, board.Generations())
	assert.NotSame(t, first, board.Grid(), "grid is replaced, not mutated")
	assert.Equal(t, "........\n........\n.XXX....\n........\n........", board.Render())
	assert.Equal(t, 8, board.Grid().GetWidth())
	assert.Equal(t, 5, board.Grid().GetHeight())

	board.Step()
	board.Step()
	assert.True(t, board.Finished())
	assert.Equal(t, "........\n........\n.XXX....\n........\n........", board.Render())
}

func TestBoardStepWhenFinished(t *testing.T) {
	board := NewBoard(0, gridFrom(".x.", ".x.", ".x."))
	require.True(t, board.Finished())

	before := board.Render()
	board.Step()
	assert.Equal(t, 0, board.Generations())
	assert.Equal(t, before, board.Render())
}

func TestNewBoardDimensions(t *testing.T) {
	board := NewBoard(4, NewGrid(7, 3))
	assert.Equal(t, 7, board.Columns())
	assert.Equal(t, 3, board.Rows())
	assert.False(t, board.Finished())
}
