package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	// When: alice challenges bob
	session := NewSession("alice", "bob")

	// Then: alice plays X and moves first on an empty board
	expected := &Session{
		Key:     NewSessionKey("alice", "bob"),
		PlayerX: "alice",
		PlayerO: "bob",
		Turn:    X,
	}
	require.Equal(t, expected, session)
	assert.False(t, session.IsTerminal())
}

func TestNewSessionKey(t *testing.T) {
	t.Run("Same pair gives the same key", func(t *testing.T) {
		assert.Equal(t, NewSessionKey("alice", "bob"), NewSessionKey("alice", "bob"))
	})

	t.Run("Order of the pair matters", func(t *testing.T) {
		assert.NotEqual(t, NewSessionKey("alice", "bob"), NewSessionKey("bob", "alice"))
	})

	t.Run("Concatenation does not collide", func(t *testing.T) {
		assert.NotEqual(t, NewSessionKey("ab", "c"), NewSessionKey("a", "bc"))
	})
}

func TestSession_Participants(t *testing.T) {
	session := NewSession("alice", "bob")

	assert.Equal(t, X, session.MarkOf("alice"))
	assert.Equal(t, O, session.MarkOf("bob"))
	assert.Equal(t, Empty, session.MarkOf("carol"))

	assert.Equal(t, PlayerID("alice"), session.PlayerFor(X))
	assert.Equal(t, PlayerID("bob"), session.PlayerFor(O))

	assert.Equal(t, PlayerID("bob"), session.Opponent("alice"))
	assert.Equal(t, PlayerID("alice"), session.Opponent("bob"))
	assert.Empty(t, session.Opponent("carol"))

	assert.Equal(t, []PlayerID{"alice", "bob"}, session.Participants())
}

func TestSession_IsTerminal(t *testing.T) {
	t.Run("Completed sessions are terminal", func(t *testing.T) {
		session := NewSession("alice", "bob")
		session.Completed = true

		assert.True(t, session.IsTerminal())
		assert.False(t, session.IsExhausted())
	})

	t.Run("Nine turns exhaust the board", func(t *testing.T) {
		session := NewSession("alice", "bob")
		session.TurnsPlayed = MaxTurns

		assert.True(t, session.IsExhausted())
		assert.True(t, session.IsTerminal())
	})
}

func TestSession_Clone(t *testing.T) {
	// Given: a session with one move
	session := NewSession("alice", "bob")
	session.Board.Set(0, 0, X)

	// When: the clone is mutated
	clone := session.Clone()
	clone.Board.Set(1, 1, O)
	clone.TurnsPlayed = 2

	// Then: the original is untouched
	assert.Equal(t, Empty, session.Board.Get(1, 1))
	assert.Zero(t, session.TurnsPlayed)
	assert.Nil(t, (*Session)(nil).Clone())
}

func TestStats_Describe(t *testing.T) {
	stats := Stats{Wins: 3, Losses: 1, Ties: 2}

	assert.Equal(t, "alice has 3 wins, 2 ties, and 1 loses.", stats.Describe("alice"))
}
