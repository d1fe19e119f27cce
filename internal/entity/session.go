package entity

type Session struct {
	Key         SessionKey `json:"key"`
	PlayerX     PlayerID   `json:"player_x"`
	PlayerO     PlayerID   `json:"player_o"`
	Turn        Cell       `json:"turn"`
	Board       Board      `json:"board"`
	TurnsPlayed uint8      `json:"turns_played"`
	Completed   bool       `json:"completed"`
}

// NewSession - the initiator plays X and moves first.
func NewSession(initiator, opponent PlayerID) *Session {
	return &Session{
		Key:     NewSessionKey(initiator, opponent),
		PlayerX: initiator,
		PlayerO: opponent,
		Turn:    X,
	}
}

func (that *Session) PlayerFor(mark Cell) PlayerID {
	switch mark {
	case X:
		return that.PlayerX
	case O:
		return that.PlayerO
	default:
		return ""
	}
}

func (that *Session) MarkOf(player PlayerID) Cell {
	switch player {
	case that.PlayerX:
		return X
	case that.PlayerO:
		return O
	default:
		return Empty
	}
}

// Opponent - the other participant, empty if player is not in the session.
func (that *Session) Opponent(player PlayerID) PlayerID {
	switch player {
	case that.PlayerX:
		return that.PlayerO
	case that.PlayerO:
		return that.PlayerX
	default:
		return ""
	}
}

func (that *Session) Participants() []PlayerID {
	return []PlayerID{that.PlayerX, that.PlayerO}
}

func (that *Session) IsExhausted() bool {
	return that.TurnsPlayed >= MaxTurns
}

func (that *Session) IsTerminal() bool {
	return that.Completed || that.IsExhausted()
}

func (that *Session) Clone() *Session {
	if that == nil {
		return nil
	}

	clone := *that

	return &clone
}
