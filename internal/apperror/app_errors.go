package apperror

import "errors"

var (
	ErrAlreadyInSession = errors.New("you must finish your current game before playing a new one")
	ErrNoActiveSession  = errors.New("you do not have an active game")
	ErrPositionTooHigh  = errors.New("positions only go up to 3")
	ErrPositionTooLow   = errors.New("the lowest position is 1")
	ErrPositionOccupied = errors.New("position is already played")
	ErrNotYourTurn      = errors.New("it is not your turn")
	ErrNoStats          = errors.New("player does not have any statistics")

	ErrSelfChallenge       = errors.New("a player cannot challenge themselves")
	ErrInvalidPlayer       = errors.New("player id is empty")
	ErrInsufficientDeposit = errors.New("deposit does not cover storage")
	ErrUnauthenticated     = errors.New("caller is not authenticated")
	ErrSessionCompleted    = errors.New("game is already finished")
)
