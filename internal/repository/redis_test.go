package repository_test

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/repotest"
	"github.com/rocketscienceinc/tictactoe-contract/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (context.Context, repotest.Store) {
		ctx, st := suite.New(t)

		return ctx, repository.NewStore(st.Storage)
	})
}

func TestSessionRepository_Keys(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a committed session
	session := entity.NewSession("alice", "bob")
	changes := repository.NewChangeset()
	changes.PutSession(session)
	changes.BindPlayer("alice", session.Key)
	require.NoError(t, repository.NewCommitter(st.Storage).Commit(ctx, changes))

	// Then: records live under readable keys
	key, err := st.Storage.Get(ctx, "player:alice:session").Result()
	require.NoError(t, err)
	assert.Equal(t, string(session.Key), key)

	exists, err := st.Storage.Exists(ctx, "session:"+string(session.Key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestSessionRepository_CorruptPayload(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: garbage stored under a session key
	require.NoError(t, st.Storage.Set(ctx, "session:broken", "{not json", 0).Err())

	// When: reading it
	_, err := repository.NewSessionRepository(st.Storage).GetSession(ctx, "broken")

	// Then: a decode error is returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal session")
}
