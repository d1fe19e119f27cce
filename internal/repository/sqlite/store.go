// Package sqlite provides a SQLite-backed session and stats store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"

	// registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS session_keys (
	   player_id   TEXT PRIMARY KEY,
	   session_key TEXT NOT NULL
	 )`,
	`CREATE TABLE IF NOT EXISTS sessions (
	   session_key TEXT PRIMARY KEY,
	   payload     BLOB NOT NULL
	 )`,
	`CREATE TABLE IF NOT EXISTS stats (
	   player_id TEXT PRIMARY KEY,
	   wins      INTEGER NOT NULL DEFAULT 0,
	   losses    INTEGER NOT NULL DEFAULT 0,
	   ties      INTEGER NOT NULL DEFAULT 0
	 )`,
}

// Store persists sessions and stats in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and creates the tables.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err = store.init(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return store, nil
}

func (that *Store) init(ctx context.Context) error {
	for _, query := range schema {
		if _, err := that.sqlDB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

// Close closes the SQLite handle.
func (that *Store) Close() error {
	if that == nil || that.sqlDB == nil {
		return nil
	}

	return that.sqlDB.Close()
}

func (that *Store) GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error) {
	var key string

	err := that.sqlDB.QueryRowContext(ctx, `SELECT session_key FROM session_keys WHERE player_id = ?`, string(id)).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrSessionKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session key: %w", err)
	}

	return entity.SessionKey(key), nil
}

func (that *Store) GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error) {
	var payload []byte

	err := that.sqlDB.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE session_key = ?`, string(key)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return repository.DecodeSession(payload)
}

func (that *Store) GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error) {
	var stats entity.Stats

	err := that.sqlDB.QueryRowContext(ctx, `SELECT wins, losses, ties FROM stats WHERE player_id = ?`, string(id)).
		Scan(&stats.Wins, &stats.Losses, &stats.Ties)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Stats{}, repository.ErrStatsNotFound
	}
	if err != nil {
		return entity.Stats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// Commit applies the changeset in one transaction.
func (that *Store) Commit(ctx context.Context, changes *repository.Changeset) error {
	if changes.IsEmpty() {
		return nil
	}

	tx, err := that.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err = apply(ctx, tx, changes); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func apply(ctx context.Context, tx *sql.Tx, changes *repository.Changeset) error {
	for _, session := range changes.Sessions() {
		payload, err := repository.EncodeSession(session)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (session_key, payload) VALUES (?, ?)
			 ON CONFLICT(session_key) DO UPDATE SET payload = excluded.payload`,
			string(session.Key), payload,
		); err != nil {
			return fmt.Errorf("put session: %w", err)
		}
	}

	for _, key := range changes.Drops() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE session_key = ?`, string(key)); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	for id, key := range changes.Bindings() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session_keys (player_id, session_key) VALUES (?, ?)
			 ON CONFLICT(player_id) DO UPDATE SET session_key = excluded.session_key`,
			string(id), string(key),
		); err != nil {
			return fmt.Errorf("bind player: %w", err)
		}
	}

	for _, id := range changes.Unbinds() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_keys WHERE player_id = ?`, string(id)); err != nil {
			return fmt.Errorf("unbind player: %w", err)
		}
	}

	for id, stats := range changes.Stats() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stats (player_id, wins, losses, ties) VALUES (?, ?, ?, ?)
			 ON CONFLICT(player_id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, ties = excluded.ties`,
			string(id), int64(stats.Wins), int64(stats.Losses), int64(stats.Ties),
		); err != nil {
			return fmt.Errorf("put stats: %w", err)
		}
	}

	return nil
}
