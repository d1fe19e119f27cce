package repository

import "github.com/redis/go-redis/v9"

// Store - the redis repositories behind one value.
type Store struct {
	SessionRepository
	StatsRepository
	Committer
}

func NewStore(client *redis.Client) *Store {
	return &Store{
		SessionRepository: NewSessionRepository(client),
		StatsRepository:   NewStatsRepository(client),
		Committer:         NewCommitter(client),
	}
}
