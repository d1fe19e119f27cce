// Package memory keeps sessions and stats in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
)

// Store is safe for concurrent use. Sessions are copied on the way in and out.
type Store struct {
	mu       sync.RWMutex
	keys     map[entity.PlayerID]entity.SessionKey
	sessions map[entity.SessionKey]*entity.Session
	stats    map[entity.PlayerID]entity.Stats
}

func NewStore() *Store {
	return &Store{
		keys:     make(map[entity.PlayerID]entity.SessionKey),
		sessions: make(map[entity.SessionKey]*entity.Session),
		stats:    make(map[entity.PlayerID]entity.Stats),
	}
}

func (s *Store) GetSessionKey(_ context.Context, id entity.PlayerID) (entity.SessionKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[id]
	if !ok {
		return "", repository.ErrSessionKeyNotFound
	}

	return key, nil
}

func (s *Store) GetSession(_ context.Context, key entity.SessionKey) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[key]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return session.Clone(), nil
}

func (s *Store) GetStats(_ context.Context, id entity.PlayerID) (entity.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.stats[id]
	if !ok {
		return entity.Stats{}, repository.ErrStatsNotFound
	}

	return stats, nil
}

// Commit applies the changeset under one write lock.
func (s *Store) Commit(ctx context.Context, changes *repository.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range changes.Sessions() {
		s.sessions[session.Key] = session
	}
	for _, key := range changes.Drops() {
		delete(s.sessions, key)
	}
	for id, key := range changes.Bindings() {
		s.keys[id] = key
	}
	for _, id := range changes.Unbinds() {
		delete(s.keys, id)
	}
	for id, stats := range changes.Stats() {
		s.stats[id] = stats
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}
