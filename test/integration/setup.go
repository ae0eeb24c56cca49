//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/bagdasarian/taskflow/internal/config"
	"github.com/bagdasarian/taskflow/internal/db"
	"github.com/bagdasarian/taskflow/internal/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	require.NoError(t, db.RunMigrations(database, config.DriverPostgres))

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := &config.Config{Redis: config.RedisConfig{Addr: fmt.Sprintf("%s:%s", host, port.Port())}}
	rdb, err := db.NewRedis(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		rdb.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return rdb
}

// backends starts one of each networked backend.
func backends() map[string]func(t *testing.T) storage.Backend {
	return map[string]func(t *testing.T) storage.Backend{
		"postgres": func(t *testing.T) storage.Backend {
			return storage.NewSQLBackend(setupTestDB(t), storage.DialectPostgres)
		},
		"redis": func(t *testing.T) storage.Backend {
			return storage.NewRedisBackend(setupTestRedis(t))
		},
	}
}
