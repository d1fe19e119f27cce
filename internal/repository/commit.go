package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Committer interface {
	Commit(ctx context.Context, changes *Changeset) error
}

type dbCommitter struct {
	client *redis.Client
}

func NewCommitter(client *redis.Client) Committer {
	return &dbCommitter{
		client: client,
	}
}

// Commit applies the changeset in a single MULTI/EXEC block.
func (that *dbCommitter) Commit(ctx context.Context, changes *Changeset) error {
	if changes.IsEmpty() {
		return nil
	}

	values := make(map[string][]byte)

	for _, session := range changes.Sessions() {
		raw, err := EncodeSession(session)
		if err != nil {
			return err
		}
		values[sessionKey(session.Key)] = raw
	}

	for id, stats := range changes.Stats() {
		raw, err := EncodeStats(stats)
		if err != nil {
			return err
		}
		values[statsKey(id)] = raw
	}

	for id, key := range changes.Bindings() {
		values[sessionKeyKey(id)] = []byte(key)
	}

	var deletions []string
	for _, id := range changes.Unbinds() {
		deletions = append(deletions, sessionKeyKey(id))
	}
	for _, key := range changes.Drops() {
		deletions = append(deletions, sessionKey(key))
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, key, value, 0)
		}

		if len(deletions) > 0 {
			pipe.Del(ctx, deletions...)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}

	return nil
}
