package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bagdasarian/taskflow/internal/config"
	"github.com/bagdasarian/taskflow/internal/db"
	"github.com/bagdasarian/taskflow/internal/logger"
	"github.com/bagdasarian/taskflow/internal/metrics"
	"github.com/bagdasarian/taskflow/internal/repository/kv"
	"github.com/bagdasarian/taskflow/internal/service"
	"github.com/bagdasarian/taskflow/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	store    *storage.Store
	closer   io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New("taskflow", cfg.Log.Level)
	registry := prometheus.NewRegistry()

	backend, closer, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("store backend ready")

	store := storage.NewStore(backend,
		storage.WithPrefix(cfg.Store.KeyPrefix),
		storage.WithLogger(log),
		storage.WithRecorder(metrics.NewCollector(registry)),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		store:    store,
		closer:   closer,
	}, nil
}

// openBackend connects the configured driver. SQL drivers get their schema
// migrated before use.
func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return storage.NewMemoryBackend(), nopCloser{}, nil

	case config.DriverRedis:
		rdb, err := db.NewRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisBackend(rdb), rdb, nil

	case config.DriverPostgres, config.DriverSQLite:
		database, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(database, cfg.Store.Driver); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		dialect := storage.DialectSQLite
		if cfg.Store.Driver == config.DriverPostgres {
			dialect = storage.DialectPostgres
		}
		return storage.NewSQLBackend(database, dialect), database, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func (a *app) workspace() (service.Workspace, error) {
	hasher, err := service.NewPasswordHasher(a.cfg.Auth.PasswordHasher, a.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	if a.cfg.Auth.PasswordHasher == config.HasherLegacy {
		a.log.Warn().Msg("legacy password checksum enabled: passwords are not protected")
	}

	auth := service.NewAuthService(
		kv.NewUserRepository(a.store),
		kv.NewSessionRepository(a.store),
		hasher,
		service.WithLogger(a.log.With().Str("component", "auth").Logger()),
	)

	return service.NewWorkspace(auth, service.Repositories{
		Projects:   kv.NewProjectRepository(a.store),
		Tasks:      kv.NewTaskRepository(a.store),
		Teams:      kv.NewTeamRepository(a.store),
		Activities: kv.NewActivityRepository(a.store),
	}, service.WithLogger(a.log.With().Str("component", "workspace").Logger())), nil
}

func (a *app) Close() error {
	return a.closer.Close()
}
