// Package repotest holds the behaviour every session store must show.
package repotest

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Store interface {
	GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error)
	GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error)
	GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error)
	Commit(ctx context.Context, changes *repository.Changeset) error
}

// Run checks a store against the shared contract, newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) (context.Context, Store)) {
	t.Run("Missing records return not found", func(t *testing.T) {
		ctx, store := newStore(t)

		// When: reading records that were never written
		_, keyErr := store.GetSessionKey(ctx, "nobody")
		_, sessionErr := store.GetSession(ctx, "nothing")
		_, statsErr := store.GetStats(ctx, "nobody")

		// Then: every read reports its own not found error
		require.ErrorIs(t, keyErr, repository.ErrSessionKeyNotFound)
		require.ErrorIs(t, sessionErr, repository.ErrSessionNotFound)
		require.ErrorIs(t, statsErr, repository.ErrStatsNotFound)
	})

	t.Run("Commit writes every staged record", func(t *testing.T) {
		ctx, store := newStore(t)

		// Given: a changeset that opens a session between alice and bob
		session := entity.NewSession("alice", "bob")
		session.Board.Set(1, 1, entity.X)
		session.TurnsPlayed = 1
		session.Turn = entity.O

		changes := repository.NewChangeset()
		changes.PutSession(session)
		changes.BindPlayer("alice", session.Key)
		changes.BindPlayer("bob", session.Key)
		changes.PutStats("alice", entity.Stats{Wins: 2})
		changes.PutStats("bob", entity.Stats{Losses: 1, Ties: 3})

		// When: committing it
		require.NoError(t, store.Commit(ctx, changes))

		// Then: both players resolve to the stored session
		for _, id := range []entity.PlayerID{"alice", "bob"} {
			key, err := store.GetSessionKey(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, session.Key, key)
		}

		stored, err := store.GetSession(ctx, session.Key)
		require.NoError(t, err)
		assert.Equal(t, session, stored)

		stats, err := store.GetStats(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Losses: 1, Ties: 3}, stats)
	})

	t.Run("Commit deletes unbound players and dropped sessions", func(t *testing.T) {
		ctx, store := newStore(t)

		// Given: a stored session
		session := entity.NewSession("alice", "bob")
		opening := repository.NewChangeset()
		opening.PutSession(session)
		opening.BindPlayer("alice", session.Key)
		opening.BindPlayer("bob", session.Key)
		require.NoError(t, store.Commit(ctx, opening))

		// When: tearing it down and recording stats in one commit
		teardown := repository.NewChangeset()
		teardown.DropSession(session.Key)
		teardown.UnbindPlayer("alice")
		teardown.UnbindPlayer("bob")
		teardown.PutStats("alice", entity.Stats{Wins: 1})
		require.NoError(t, store.Commit(ctx, teardown))

		// Then: nothing resolves any more but the stats remain
		_, err := store.GetSessionKey(ctx, "alice")
		require.ErrorIs(t, err, repository.ErrSessionKeyNotFound)
		_, err = store.GetSessionKey(ctx, "bob")
		require.ErrorIs(t, err, repository.ErrSessionKeyNotFound)
		_, err = store.GetSession(ctx, session.Key)
		require.ErrorIs(t, err, repository.ErrSessionNotFound)

		stats, err := store.GetStats(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Wins: 1}, stats)
	})

	t.Run("Commit overwrites existing records", func(t *testing.T) {
		ctx, store := newStore(t)

		// Given: stored stats and session
		session := entity.NewSession("alice", "bob")
		first := repository.NewChangeset()
		first.PutSession(session)
		first.PutStats("alice", entity.Stats{Wins: 1})
		require.NoError(t, store.Commit(ctx, first))

		// When: both are written again
		session.Board.Set(0, 0, entity.X)
		session.TurnsPlayed = 1
		second := repository.NewChangeset()
		second.PutSession(session)
		second.PutStats("alice", entity.Stats{Wins: 2})
		require.NoError(t, store.Commit(ctx, second))

		// Then: the latest values are read back
		stored, err := store.GetSession(ctx, session.Key)
		require.NoError(t, err)
		assert.Equal(t, entity.X, stored.Board.Get(0, 0))

		stats, err := store.GetStats(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(2), stats.Wins)
	})

	t.Run("Empty commit is a no-op", func(t *testing.T) {
		ctx, store := newStore(t)

		require.NoError(t, store.Commit(ctx, repository.NewChangeset()))
	})
}
