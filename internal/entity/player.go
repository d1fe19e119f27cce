package entity

import (
	"crypto/sha256"
	"encoding/hex"
)

// PlayerID - an already authenticated account identity.
type PlayerID string

// SessionKey - storage key of a session, shared by both participants.
type SessionKey string

// NewSessionKey derives the key from the ordered pair (initiator, opponent).
func NewSessionKey(initiator, opponent PlayerID) SessionKey {
	sum := sha256.Sum256([]byte(string(initiator) + "\x00" + string(opponent)))

	return SessionKey(hex.EncodeToString(sum[:]))
}
