package tictactoe

import (
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/stretchr/testify/assert"
)

var winningLines = map[string][3][2]int{
	"top row":       {{0, 0}, {0, 1}, {0, 2}},
	"middle row":    {{1, 0}, {1, 1}, {1, 2}},
	"bottom row":    {{2, 0}, {2, 1}, {2, 2}},
	"left column":   {{0, 0}, {1, 0}, {2, 0}},
	"middle column": {{0, 1}, {1, 1}, {2, 1}},
	"right column":  {{0, 2}, {1, 2}, {2, 2}},
	"main diagonal": {{0, 0}, {1, 1}, {2, 2}},
	"anti diagonal": {{0, 2}, {1, 1}, {2, 0}},
}

func TestWins_EveryLine(t *testing.T) {
	for name, line := range winningLines {
		for _, mark := range []entity.Cell{entity.X, entity.O} {
			t.Run(fmt.Sprintf("%s for %s", name, mark), func(t *testing.T) {
				// Given: a board where the line is filled with mark
				var board entity.Board
				for _, cell := range line {
					board.Set(cell[0], cell[1], mark)
				}

				// Then: any cell of the line reports the win
				for _, cell := range line {
					assert.True(t, Wins(&board, cell[0], cell[1], mark))
				}

				// And: the other mark does not win through the same cells
				for _, cell := range line {
					assert.False(t, Wins(&board, cell[0], cell[1], mark.Opponent()))
				}
			})
		}
	}
}

func TestWins_IncompleteLines(t *testing.T) {
	t.Run("Two in a row is not a win", func(t *testing.T) {
		for name, line := range winningLines {
			var board entity.Board
			board.Set(line[0][0], line[0][1], entity.X)
			board.Set(line[1][0], line[1][1], entity.X)

			assert.False(t, Wins(&board, line[1][0], line[1][1], entity.X), name)
		}
	})

	t.Run("A line broken by the other mark is not a win", func(t *testing.T) {
		var board entity.Board
		board.Set(0, 0, entity.X)
		board.Set(0, 1, entity.O)
		board.Set(0, 2, entity.X)

		assert.False(t, Wins(&board, 0, 2, entity.X))
	})

	t.Run("Cell not holding the mark never wins", func(t *testing.T) {
		var board entity.Board
		board.Set(0, 0, entity.X)
		board.Set(0, 1, entity.X)
		board.Set(0, 2, entity.X)

		assert.False(t, Wins(&board, 1, 1, entity.X))
		assert.False(t, Wins(&board, 0, 0, entity.Empty))
	})
}

func TestWins_OnlyLinesThroughThePlayedCell(t *testing.T) {
	t.Run("Complete line elsewhere does not trigger", func(t *testing.T) {
		// Given: X holds the top row and also the bottom left cell
		var board entity.Board
		board.Set(0, 0, entity.X)
		board.Set(0, 1, entity.X)
		board.Set(0, 2, entity.X)
		board.Set(2, 1, entity.X)

		// Then: checking a cell off that row reports no win
		assert.False(t, Wins(&board, 2, 1, entity.X))
	})

	t.Run("Off-diagonal cell ignores a complete diagonal", func(t *testing.T) {
		// Given: X holds the main diagonal and (1,0)
		var board entity.Board
		board.Set(0, 0, entity.X)
		board.Set(1, 1, entity.X)
		board.Set(2, 2, entity.X)
		board.Set(1, 0, entity.X)

		// Then: (1,0) lies on no diagonal and its row and column are incomplete
		assert.False(t, Wins(&board, 1, 0, entity.X))
	})

	t.Run("Centre checks the anti diagonal too", func(t *testing.T) {
		var board entity.Board
		board.Set(0, 2, entity.O)
		board.Set(1, 1, entity.O)
		board.Set(2, 0, entity.O)

		assert.True(t, Wins(&board, 1, 1, entity.O))
	})
}
