// Package postgres implementa el KVStore sobre PostgreSQL: una tabla
// key/jsonb con upsert por clave y transacciones reales para las cascadas.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        text PRIMARY KEY,
	data       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// querier intersección de pgxpool.Pool y pgx.Tx usada por las operaciones.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store almacén clave-valor sobre un pool pgx.
type Store struct {
	pool *pgxpool.Pool
}

var _ storage.TxStore = (*Store)(nil)

// New abre el pool, verifica la conexión y asegura la tabla collections.
func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla collections: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close cierra el pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Get deserializa el valor de key en dest. Devuelve false sin error si la
// clave no existe.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	return get(ctx, s.pool, key, dest)
}

// Set serializa value y hace upsert bajo key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	return set(ctx, s.pool, key, value)
}

// RunInTx ejecuta fn dentro de una transacción PostgreSQL con Commit si fn
// retorna nil y Rollback en caso contrario.
func (s *Store) RunInTx(ctx context.Context, fn func(tx storage.KVStore) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&txStore{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txStore KVStore atado a una transacción en curso.
type txStore struct {
	tx pgx.Tx
}

func (t *txStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	return get(ctx, t.tx, key, dest)
}

func (t *txStore) Set(ctx context.Context, key string, value any) error {
	return set(ctx, t.tx, key, value)
}

func get(ctx context.Context, q querier, key string, dest any) (bool, error) {
	var raw []byte
	err := q.QueryRow(ctx, `SELECT data FROM collections WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

func set(ctx context.Context, q querier, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	_, err = q.Exec(ctx, `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}
