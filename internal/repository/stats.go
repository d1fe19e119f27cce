package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

var ErrStatsNotFound = errors.New("stats not found")

type StatsRepository interface {
	GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func (that *dbStats) GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error) {
	response, err := that.client.Get(ctx, statsKey(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return entity.Stats{}, ErrStatsNotFound
	}

	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats by player id: %w", err)
	}

	return DecodeStats(response)
}
