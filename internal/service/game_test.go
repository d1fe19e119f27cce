package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/usecase"
	mockedService "github.com/rocketscienceinc/tictactoe-contract/mocks/service"
)

const (
	alice entity.PlayerID = "alice"
	bob   entity.PlayerID = "bob"
)

var errRedisDown = errors.New("redis down")

type fixture struct {
	service  GameService
	identity *mockedService.MockidentityProvider
	registry *mockedService.MockmatchRegistry
	stats    *mockedService.MockstatsViewer
	logs     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := &fixture{
		identity: mockedService.NewMockidentityProvider(t),
		registry: mockedService.NewMockmatchRegistry(t),
		stats:    mockedService.NewMockstatsViewer(t),
		logs:     logs,
	}
	f.service = NewGameService(logger, f.identity, f.registry, f.stats)

	return f
}

func TestGameService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a session for the caller", func(t *testing.T) {
		// Given: alice is authenticated
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(alice, nil).Once()

		started := &usecase.Started{Key: entity.NewSessionKey(alice, bob), StateBytes: 300, Refund: 7}
		f.registry.EXPECT().StartSession(mock.Anything, alice, bob, uint64(3007)).Return(started, nil).Once()

		// When: alice challenges bob
		result, err := f.service.StartSession(ctx, bob, 3007)

		// Then: the registry result is returned
		require.NoError(t, err)
		assert.Equal(t, started, result)
	})

	t.Run("Error when unauthenticated", func(t *testing.T) {
		// Given: nobody is authenticated
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(entity.PlayerID(""), apperror.ErrUnauthenticated).Once()

		// When: a session is started
		_, err := f.service.StartSession(ctx, bob, 0)

		// Then: the registry is never reached
		require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("Registry errors are wrapped", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(alice, nil).Once()
		f.registry.EXPECT().
			StartSession(mock.Anything, alice, bob, uint64(0)).
			Return(nil, apperror.ErrAlreadyInSession).
			Once()

		_, err := f.service.StartSession(ctx, bob, 0)

		require.ErrorIs(t, err, apperror.ErrAlreadyInSession)
	})
}

func TestGameService_SubmitMove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    entity.OutcomeKind
		message string
	}{
		{name: "win", kind: entity.Won, message: MessageWon},
		{name: "tie", kind: entity.Tied, message: MessageTied},
		{name: "forced tie", kind: entity.ForcedTie, message: MessageTied},
		{name: "forced loss", kind: entity.ForcedLoss, message: MessageLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the registry resolves alice's move with the outcome
			f := newFixture(t)
			f.identity.EXPECT().Caller(mock.Anything).Return(alice, nil).Once()

			session := entity.NewSession(alice, bob)
			session.Board.Set(0, 0, entity.X)
			f.registry.EXPECT().
				SubmitMove(mock.Anything, alice, 1, 1).
				Return(&usecase.MoveResult{Outcome: entity.MoveOutcome{Kind: tt.kind}, Mover: alice, Opponent: bob, Session: session}, nil).
				Once()

			// When: alice moves
			result, err := f.service.SubmitMove(ctx, 1, 1)

			// Then: the outcome is returned and announced with the board
			require.NoError(t, err)
			assert.Equal(t, tt.kind, result.Outcome.Kind)
			assert.Contains(t, f.logs.String(), tt.message)
			assert.Contains(t, f.logs.String(), " X |   |   ")
		})
	}

	t.Run("Continued move announces nothing", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(alice, nil).Once()
		f.registry.EXPECT().
			SubmitMove(mock.Anything, alice, 2, 2).
			Return(&usecase.MoveResult{Mover: alice, Opponent: bob, Session: entity.NewSession(alice, bob)}, nil).
			Once()

		_, err := f.service.SubmitMove(ctx, 2, 2)

		require.NoError(t, err)
		for _, message := range []string{MessageWon, MessageTied, MessageLost} {
			assert.NotContains(t, f.logs.String(), message)
		}
	})

	t.Run("Invalid moves are wrapped", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(bob, nil).Once()
		f.registry.EXPECT().
			SubmitMove(mock.Anything, bob, 1, 1).
			Return(nil, apperror.ErrNotYourTurn).
			Once()

		_, err := f.service.SubmitMove(ctx, 1, 1)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestGameService_ViewSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the caller's session", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(bob, nil).Once()
		session := entity.NewSession(alice, bob)
		f.registry.EXPECT().ViewSession(mock.Anything, bob).Return(session, nil).Once()

		result, err := f.service.ViewSession(ctx)

		require.NoError(t, err)
		assert.Equal(t, session, result)
	})

	t.Run("Error without a session", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(bob, nil).Once()
		f.registry.EXPECT().ViewSession(mock.Anything, bob).Return(nil, apperror.ErrNoActiveSession).Once()

		_, err := f.service.ViewSession(ctx)

		require.ErrorIs(t, err, apperror.ErrNoActiveSession)
	})
}

func TestGameService_ViewStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit player needs no login", func(t *testing.T) {
		// Given: bob has stats
		f := newFixture(t)
		f.stats.EXPECT().View(mock.Anything, bob).Return(entity.Stats{Wins: 2, Losses: 1, Ties: 3}, nil).Once()

		// When: bob's stats are viewed
		stats, err := f.service.ViewStats(ctx, bob)

		// Then: they are returned and described in the log
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{Wins: 2, Losses: 1, Ties: 3}, stats)
		assert.Contains(t, f.logs.String(), "bob has 2 wins, 3 ties, and 1 loses.")
	})

	t.Run("Empty player means the caller", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().Caller(mock.Anything).Return(alice, nil).Once()
		f.stats.EXPECT().View(mock.Anything, alice).Return(entity.Stats{}, nil).Once()

		_, err := f.service.ViewStats(ctx, "")

		require.NoError(t, err)
	})

	t.Run("Error for unknown player", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().View(mock.Anything, bob).Return(entity.Stats{}, apperror.ErrNoStats).Once()

		_, err := f.service.ViewStats(ctx, bob)

		require.ErrorIs(t, err, apperror.ErrNoStats)
	})

	t.Run("Storage errors are wrapped", func(t *testing.T) {
		f := newFixture(t)
		f.stats.EXPECT().View(mock.Anything, bob).Return(entity.Stats{}, errRedisDown).Once()

		_, err := f.service.ViewStats(ctx, bob)

		require.ErrorIs(t, err, errRedisDown)
	})
}
