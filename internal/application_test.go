package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-contract/internal/config"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/memory"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/sqlite"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.DriverMemory}}

		db, err := openStore(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		assert.IsType(t, &memory.Store{}, db)
	})

	t.Run("SQLite driver", func(t *testing.T) {
		// Given: a sqlite path in a temp dir
		conf := &config.Config{
			Storage: config.Storage{Driver: config.DriverSQLite},
			SQLite:  config.SQLite{Path: filepath.Join(t.TempDir(), "game.db")},
		}

		// When: the store is opened
		db, err := openStore(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		// Then: it is an empty sqlite store
		assert.IsType(t, &sqlite.Store{}, db)
		_, err = db.GetStats(ctx, entity.PlayerID("alice"))
		require.ErrorIs(t, err, repository.ErrStatsNotFound)
	})

	t.Run("Redis driver without host", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.DriverRedis}}

		_, err := openStore(ctx, conf)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "etcd"}}

		_, err := openStore(ctx, conf)

		require.Error(t, err)
	})
}
