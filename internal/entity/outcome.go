package entity

type OutcomeKind uint8

const (
	Continued OutcomeKind = iota
	Won
	Tied
	// ForcedLoss and ForcedTie resolve a move against a session that was already terminal.
	ForcedLoss
	ForcedTie
)

func (that OutcomeKind) String() string {
	switch that {
	case Continued:
		return "continued"
	case Won:
		return "won"
	case Tied:
		return "tied"
	case ForcedLoss:
		return "forced_loss"
	case ForcedTie:
		return "forced_tie"
	default:
		return "unknown"
	}
}

type MoveOutcome struct {
	Kind OutcomeKind
	// Mark is the winner's mark for Won and Empty otherwise.
	Mark Cell
}

func (that MoveOutcome) IsTerminal() bool {
	return that.Kind != Continued
}

// Resolution - a terminal outcome bound to the player who triggered it and their opponent.
type Resolution struct {
	Outcome  MoveOutcome
	Mover    PlayerID
	Opponent PlayerID
}
