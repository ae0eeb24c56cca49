package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DBExecutor is satisfied by both *sql.DB and *sql.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

type sqlQueries struct {
	get    string
	set    string
	remove string
}

var dialectQueries = map[Dialect]sqlQueries{
	DialectPostgres: {
		get: `SELECT store_value FROM kv_store WHERE store_key = $1`,
		set: `
			INSERT INTO kv_store (store_key, store_value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (store_key) DO UPDATE
			SET store_value = EXCLUDED.store_value, updated_at = EXCLUDED.updated_at
		`,
		remove: `DELETE FROM kv_store WHERE store_key = $1`,
	},
	DialectSQLite: {
		get: `SELECT store_value FROM kv_store WHERE store_key = ?`,
		set: `
			INSERT INTO kv_store (store_key, store_value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (store_key) DO UPDATE
			SET store_value = excluded.store_value, updated_at = excluded.updated_at
		`,
		remove: `DELETE FROM kv_store WHERE store_key = ?`,
	},
}

// SQLBackend keeps entries in the kv_store table created by the db migrations.
type SQLBackend struct {
	executor DBExecutor
	queries  sqlQueries
}

func NewSQLBackend(db *sql.DB, dialect Dialect) *SQLBackend {
	return NewSQLBackendWithExecutor(db, dialect)
}

func NewSQLBackendWithExecutor(executor DBExecutor, dialect Dialect) *SQLBackend {
	return &SQLBackend{executor: executor, queries: dialectQueries[dialect]}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.executor.QueryRowContext(ctx, b.queries.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.executor.ExecContext(ctx, b.queries.set, key, string(value), time.Now().UTC())
	return err
}

func (b *SQLBackend) Remove(ctx context.Context, key string) error {
	_, err := b.executor.ExecContext(ctx, b.queries.remove, key)
	return err
}
