package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/usecase"
)

const (
	MessageWon  = "You've won!!!!"
	MessageTied = "You've tied :|"
	MessageLost = "You have lost :'("
)

// GameService - the caller facing operations. The caller is always taken from the context.
type GameService interface {
	StartSession(ctx context.Context, opponent entity.PlayerID, deposit uint64) (*usecase.Started, error)
	SubmitMove(ctx context.Context, row, col int) (*usecase.MoveResult, error)
	ViewSession(ctx context.Context) (*entity.Session, error)
	ViewStats(ctx context.Context, player entity.PlayerID) (entity.Stats, error)
}

type identityProvider interface {
	Caller(ctx context.Context) (entity.PlayerID, error)
}

type matchRegistry interface {
	StartSession(ctx context.Context, initiator, opponent entity.PlayerID, deposit uint64) (*usecase.Started, error)
	SubmitMove(ctx context.Context, caller entity.PlayerID, row, col int) (*usecase.MoveResult, error)
	ViewSession(ctx context.Context, caller entity.PlayerID) (*entity.Session, error)
}

type statsViewer interface {
	View(ctx context.Context, player entity.PlayerID) (entity.Stats, error)
}

type gameService struct {
	logger   *slog.Logger
	identity identityProvider
	registry matchRegistry
	stats    statsViewer
}

func NewGameService(logger *slog.Logger, identity identityProvider, registry matchRegistry, stats statsViewer) GameService {
	return &gameService{
		logger:   logger.With("component", "game_service"),
		identity: identity,
		registry: registry,
		stats:    stats,
	}
}

func (that *gameService) StartSession(ctx context.Context, opponent entity.PlayerID, deposit uint64) (*usecase.Started, error) {
	caller, err := that.identity.Caller(ctx)
	if err != nil {
		return nil, err
	}

	started, err := that.registry.StartSession(ctx, caller, opponent, deposit)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Info("game started", "method", "StartSession", "player", caller, "opponent", opponent)

	return started, nil
}

func (that *gameService) SubmitMove(ctx context.Context, row, col int) (*usecase.MoveResult, error) {
	caller, err := that.identity.Caller(ctx)
	if err != nil {
		return nil, err
	}

	log := that.logger.With("method", "SubmitMove", "player", caller)

	result, err := that.registry.SubmitMove(ctx, caller, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to play: %w", err)
	}

	log.Info("board", "board", result.Session.Board.Render())

	if message := OutcomeMessage(result.Outcome.Kind); message != "" {
		log.Info(message, "outcome", result.Outcome.Kind.String())
	}

	return result, nil
}

func (that *gameService) ViewSession(ctx context.Context) (*entity.Session, error) {
	caller, err := that.identity.Caller(ctx)
	if err != nil {
		return nil, err
	}

	session, err := that.registry.ViewSession(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to view game: %w", err)
	}

	that.logger.Info("board", "method", "ViewSession", "player", caller, "board", session.Board.Render())

	return session, nil
}

// ViewStats - an empty player means the caller.
func (that *gameService) ViewStats(ctx context.Context, player entity.PlayerID) (entity.Stats, error) {
	if player == "" {
		caller, err := that.identity.Caller(ctx)
		if err != nil {
			return entity.Stats{}, err
		}

		player = caller
	}

	stats, err := that.stats.View(ctx, player)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to view stats: %w", err)
	}

	that.logger.Info(stats.Describe(player), "method", "ViewStats")

	return stats, nil
}

// OutcomeMessage - what the mover is told, empty while the game goes on.
func OutcomeMessage(kind entity.OutcomeKind) string {
	switch kind {
	case entity.Won:
		return MessageWon
	case entity.Tied, entity.ForcedTie:
		return MessageTied
	case entity.ForcedLoss:
		return MessageLost
	default:
		return ""
	}
}
