package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_GetSet(t *testing.T) {
	t.Run("A new board is empty", func(t *testing.T) {
		// Given: a zero board
		var board Board

		// Then: every cell is empty and unoccupied
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				assert.Equal(t, Empty, board.Get(row, col))
				assert.False(t, board.IsOccupied(row, col))
			}
		}
		assert.Zero(t, board.Occupied())
	})

	t.Run("Set marks only the addressed cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: O is placed in the bottom left corner
		board.Set(2, 0, O)

		// Then: only that cell is occupied
		assert.Equal(t, O, board.Get(2, 0))
		assert.True(t, board.IsOccupied(2, 0))
		assert.False(t, board.IsOccupied(0, 2))
		assert.Equal(t, 1, board.Occupied())
	})

	t.Run("Out of range access panics", func(t *testing.T) {
		var board Board
		row := 3

		assert.Panics(t, func() { board.Get(row, 0) })
		assert.Panics(t, func() { board.Set(0, row, X) })
	})
}

func TestBoard_Render(t *testing.T) {
	t.Run("Empty board renders spaces", func(t *testing.T) {
		var board Board

		expected := "\n   |   |   \n-----------\n   |   |   \n-----------\n   |   |   "
		assert.Equal(t, expected, board.Render())
	})

	t.Run("Marks render as X and O", func(t *testing.T) {
		// Given: a board with a few marks
		var board Board
		board.Set(0, 0, X)
		board.Set(1, 1, O)
		board.Set(2, 2, X)

		// When: rendering it
		rendered := board.Render()

		// Then: rows are separated and cells keep their characters
		expected := "\n X |   |   \n-----------\n   | O |   \n-----------\n   |   | X "
		assert.Equal(t, expected, rendered)
	})

	t.Run("RenderWith uses the formatter for every cell", func(t *testing.T) {
		var board Board
		board.Set(0, 1, X)

		rendered := board.RenderWith(func(c Cell) string {
			if c == Empty {
				return "."
			}
			return c.String()
		})

		assert.Equal(t, "\n . | X | . \n-----------\n . | . | . \n-----------\n . | . | . ", rendered)
	})
}

func TestCell(t *testing.T) {
	t.Run("Opponent flips marks", func(t *testing.T) {
		assert.Equal(t, O, X.Opponent())
		assert.Equal(t, X, O.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})

	t.Run("Board encodes cells as strings", func(t *testing.T) {
		// Given: a board with both marks
		var board Board
		board.Set(0, 0, X)
		board.Set(0, 1, O)

		// When: encoding and decoding it
		raw, err := json.Marshal(board)
		require.NoError(t, err)

		var decoded Board
		require.NoError(t, json.Unmarshal(raw, &decoded))

		// Then: the JSON is readable and the board survives
		assert.JSONEq(t, `[["X","O",""],["","",""],["","",""]]`, string(raw))
		assert.Equal(t, board, decoded)
	})

	t.Run("Unknown cell text is rejected", func(t *testing.T) {
		var cell Cell

		err := cell.UnmarshalText([]byte("Z"))

		require.ErrorIs(t, err, ErrUnknownCell)
	})
}
