package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-contract/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
)

type statsRepo interface {
	GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error)
}

// StatsTracker owns the win/loss/tie counters. Writes are staged into the caller's changeset.
type StatsTracker struct {
	logger    *slog.Logger
	statsRepo statsRepo
}

func NewStatsTracker(logger *slog.Logger, statsRepo statsRepo) *StatsTracker {
	return &StatsTracker{
		logger:    logger.With("component", "stats_tracker"),
		statsRepo: statsRepo,
	}
}

// Ensure stages zero stats for players that have none yet.
func (that *StatsTracker) Ensure(ctx context.Context, changes *repository.Changeset, players ...entity.PlayerID) error {
	for _, player := range players {
		_, exists, err := that.current(ctx, changes, player)
		if err != nil {
			return err
		}

		if !exists {
			changes.PutStats(player, entity.Stats{})
		}
	}

	return nil
}

// Record stages the counter updates for a terminal outcome.
func (that *StatsTracker) Record(ctx context.Context, changes *repository.Changeset, resolution entity.Resolution) error {
	log := that.logger.With("method", "Record", "outcome", resolution.Outcome.Kind.String())

	switch resolution.Outcome.Kind {
	case entity.Won:
		if err := that.increment(ctx, changes, resolution.Mover, incWins); err != nil {
			return err
		}
		if err := that.increment(ctx, changes, resolution.Opponent, incLosses); err != nil {
			return err
		}
	case entity.Tied:
		if err := that.increment(ctx, changes, resolution.Mover, incTies); err != nil {
			return err
		}
		if err := that.increment(ctx, changes, resolution.Opponent, incTies); err != nil {
			return err
		}
	case entity.ForcedLoss:
		if err := that.increment(ctx, changes, resolution.Mover, incLosses); err != nil {
			return err
		}
	case entity.ForcedTie:
		if err := that.increment(ctx, changes, resolution.Mover, incTies); err != nil {
			return err
		}
	default:
		return nil
	}

	log.Debug("stats staged", "mover", resolution.Mover, "opponent", resolution.Opponent)

	return nil
}

func (that *StatsTracker) View(ctx context.Context, player entity.PlayerID) (entity.Stats, error) {
	stats, err := that.statsRepo.GetStats(ctx, player)
	if errors.Is(err, repository.ErrStatsNotFound) {
		return entity.Stats{}, fmt.Errorf("%w: %s", apperror.ErrNoStats, player)
	}

	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func incWins(stats *entity.Stats) { stats.Wins++ }
func incLosses(stats *entity.Stats) { stats.Losses++ }
func incTies(stats *entity.Stats) { stats.Ties++ }

func (that *StatsTracker) increment(ctx context.Context, changes *repository.Changeset, player entity.PlayerID, inc func(*entity.Stats)) error {
	if player == "" {
		return nil
	}

	stats, _, err := that.current(ctx, changes, player)
	if err != nil {
		return err
	}

	inc(&stats)
	changes.PutStats(player, stats)

	return nil
}

// current - staged stats first, then stored ones.
func (that *StatsTracker) current(ctx context.Context, changes *repository.Changeset, player entity.PlayerID) (entity.Stats, bool, error) {
	if stats, ok := changes.StagedStats(player); ok {
		return stats, true, nil
	}

	stats, err := that.statsRepo.GetStats(ctx, player)
	if errors.Is(err, repository.ErrStatsNotFound) {
		return entity.Stats{}, false, nil
	}

	if err != nil {
		return entity.Stats{}, false, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, true, nil
}
