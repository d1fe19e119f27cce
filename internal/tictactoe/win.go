package tictactoe

import "github.com/rocketscienceinc/tictactoe-contract/internal/entity"

// Wins reports whether mark completes a line through (row, col).
// Only lines through the played cell are checked, a win can only come from the last move.
func Wins(board *entity.Board, row, col int, mark entity.Cell) bool {
	if mark == entity.Empty || board.Get(row, col) != mark {
		return false
	}

	if lineOf(board, mark, func(i int) (int, int) { return row, i }) {
		return true
	}

	if lineOf(board, mark, func(i int) (int, int) { return i, col }) {
		return true
	}

	// the centre lies on both diagonals
	if row == col && lineOf(board, mark, func(i int) (int, int) { return i, i }) {
		return true
	}

	if row+col == entity.BoardSize-1 && lineOf(board, mark, func(i int) (int, int) { return i, entity.BoardSize - 1 - i }) {
		return true
	}

	return false
}

func lineOf(board *entity.Board, mark entity.Cell, at func(i int) (int, int)) bool {
	for i := 0; i < entity.BoardSize; i++ {
		if board.Get(at(i)) != mark {
			return false
		}
	}

	return true
}
