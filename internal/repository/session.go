package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionKeyNotFound = errors.New("player has no session")
)

type SessionRepository interface {
	GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error)
	GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error)
}

type dbSession struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &dbSession{
		client: client,
	}
}

func (that *dbSession) GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error) {
	response, err := that.client.Get(ctx, sessionKeyKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrSessionKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get session key by player id: %w", err)
	}

	return entity.SessionKey(response), nil
}

func (that *dbSession) GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKey(key)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by key: %w", err)
	}

	return DecodeSession(response)
}
