package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-contract/internal/billing"
	"github.com/rocketscienceinc/tictactoe-contract/internal/config"
	"github.com/rocketscienceinc/tictactoe-contract/internal/entity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/identity"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/memory"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/sqlite"
	"github.com/rocketscienceinc/tictactoe-contract/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-contract/internal/service"
	"github.com/rocketscienceinc/tictactoe-contract/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-contract/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// store - everything the registry and the tracker need from a storage driver.
type store interface {
	GetSessionKey(ctx context.Context, id entity.PlayerID) (entity.SessionKey, error)
	GetSession(ctx context.Context, key entity.SessionKey) (*entity.Session, error)
	GetStats(ctx context.Context, id entity.PlayerID) (entity.Stats, error)
	Commit(ctx context.Context, changes *repository.Changeset) error
	io.Closer
}

type redisStore struct {
	*repository.Store
	io.Closer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	db, err := openStore(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = db.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	stats := usecase.NewStatsTracker(logger, db)
	biller := billing.NewDepositBiller(logger, conf.Billing.ByteCost)
	registry := usecase.NewMatchRegistry(logger, db, db, db, stats, biller)
	games := service.NewGameService(logger, identity.NewContextProvider(), registry, stats)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "storage", conf.Storage.Driver)
		server := console.New(logger, games)
		consoleErrCh <- server.Serve(ctx, os.Stdin, termenv.NewOutput(os.Stdout))
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func openStore(ctx context.Context, conf *config.Config) (store, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &redisStore{
			Store:  repository.NewStore(redisStorage.Connection),
			Closer: redisStorage,
		}, nil
	case config.DriverSQLite:
		sqliteStore, err := sqlite.Open(ctx, conf.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		return sqliteStore, nil
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
