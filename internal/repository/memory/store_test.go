package memory

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (context.Context, repotest.Store) {
		return context.Background(), NewStore()
	})
}

func TestStore_SessionsAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	// Given: a stored session
	session := entity.NewSession("alice", "bob")
	changes := repository.NewChangeset()
	changes.PutSession(session)
	require.NoError(t, store.Commit(ctx, changes))

	// When: the read copy is mutated
	read, err := store.GetSession(ctx, session.Key)
	require.NoError(t, err)
	read.Board.Set(0, 0, entity.O)

	// Then: the stored session is untouched
	again, err := store.GetSession(ctx, session.Key)
	require.NoError(t, err)
	assert.Equal(t, entity.Empty, again.Board.Get(0, 0))
}

func TestStore_CommitHonoursCancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	changes := repository.NewChangeset()
	changes.PutStats("alice", entity.Stats{Wins: 1})

	require.ErrorIs(t, store.Commit(ctx, changes), context.Canceled)

	_, err := store.GetStats(context.Background(), "alice")
	require.ErrorIs(t, err, repository.ErrStatsNotFound)
}
