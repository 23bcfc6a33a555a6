package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema del almacén. El CHECK de quantity es una red de seguridad adicional:
// el ledger ya valida la invariante antes de escribir.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		sku         TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		threshold   BIGINT NOT NULL DEFAULT 10,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_levels (
		product_id  BIGINT NOT NULL REFERENCES products(id),
		location_id BIGINT NOT NULL REFERENCES locations(id),
		quantity    BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (product_id, location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id          BIGSERIAL PRIMARY KEY,
		reference   TEXT NOT NULL,
		product_id  BIGINT NOT NULL REFERENCES products(id),
		location_id BIGINT NOT NULL REFERENCES locations(id),
		type        TEXT NOT NULL,
		qty_change  BIGINT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_product ON transactions (product_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_location ON transactions (location_id, created_at DESC)`,
}

// Migrate crea las tablas si no existen (idempotente).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
