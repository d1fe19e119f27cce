package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

const (
	minPosition = 1
	maxPosition = entity.BoardSize
)

// ApplyMove validates and plays caller's move at the 1-based (row, col).
// The session is only mutated when every check passes.
func ApplyMove(session *entity.Session, caller entity.PlayerID, row, col int) (entity.MoveOutcome, error) {
	if session.IsTerminal() {
		return entity.MoveOutcome{}, apperror.ErrSessionCompleted
	}

	if err := validateMove(session, caller, row, col); err != nil {
		return entity.MoveOutcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	mark := session.Turn
	rowIdx, colIdx := row-1, col-1

	session.Board.Set(rowIdx, colIdx, mark)
	session.TurnsPlayed++

	return updateSessionStatus(session, rowIdx, colIdx, mark), nil
}

// ValidatePlacement - checks that a 1-based position is on the board.
func ValidatePlacement(row, col int) error {
	if row > maxPosition || col > maxPosition {
		return fmt.Errorf("%w, %d,%d is too high", apperror.ErrPositionTooHigh, row, col)
	}

	if row < minPosition || col < minPosition {
		return fmt.Errorf("%w, %d,%d is too low", apperror.ErrPositionTooLow, row, col)
	}

	return nil
}

// ForcedOutcome - how a move resolves when the session is already terminal.
// A completed session means the caller has lost, an exhausted board means a tie.
func ForcedOutcome(session *entity.Session) (entity.MoveOutcome, bool) {
	switch {
	case session.Completed:
		return entity.MoveOutcome{Kind: entity.ForcedLoss}, true
	case session.IsExhausted():
		return entity.MoveOutcome{Kind: entity.ForcedTie}, true
	default:
		return entity.MoveOutcome{}, false
	}
}

// validateMove - checks if the move is valid.
func validateMove(session *entity.Session, caller entity.PlayerID, row, col int) error {
	if session.PlayerFor(session.Turn) != caller {
		return apperror.ErrNotYourTurn
	}

	if err := ValidatePlacement(row, col); err != nil {
		return err
	}

	if session.Board.IsOccupied(row-1, col-1) {
		return fmt.Errorf("%w: %d,%d", apperror.ErrPositionOccupied, row, col)
	}

	return nil
}

// updateSessionStatus - checks the session status after a move.
func updateSessionStatus(session *entity.Session, row, col int, mark entity.Cell) entity.MoveOutcome {
	switch {
	case Wins(&session.Board, row, col, mark):
		session.Completed = true
		return entity.MoveOutcome{Kind: entity.Won, Mark: mark}
	case session.IsExhausted():
		// a tied session is exhausted but never completed
		return entity.MoveOutcome{Kind: entity.Tied}
	default:
		session.Turn = mark.Opponent()
		return entity.MoveOutcome{Kind: entity.Continued}
	}
}
