package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

func sessionKeyKey(id entity.PlayerID) string {
	return "player:" + string(id) + ":session"
}

func sessionKey(key entity.SessionKey) string {
	return "session:" + string(key)
}

func statsKey(id entity.PlayerID) string {
	return "stats:" + string(id)
}

func EncodeSession(session *entity.Session) ([]byte, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("could not marshal session: %w", err)
	}

	return raw, nil
}

func DecodeSession(raw []byte) (*entity.Session, error) {
	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func EncodeStats(stats entity.Stats) ([]byte, error) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("could not marshal stats: %w", err)
	}

	return raw, nil
}

func DecodeStats(raw []byte) (entity.Stats, error) {
	var stats entity.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return stats, nil
}
