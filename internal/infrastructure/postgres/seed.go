package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed puebla datos de ejemplo en el primer arranque, solo si la tabla de
// productos está vacía. Todo en una transacción: o queda el juego completo
// de datos o nada.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int64
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	var tshirtID, mugID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO products (sku, name, threshold) VALUES ('TS-RED', 'Red T-Shirt', 10) RETURNING id`,
	).Scan(&tshirtID); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO products (sku, name, threshold) VALUES ('MUG-01', 'Office Mug', 25) RETURNING id`,
	).Scan(&mugID); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	var warehouseID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO locations (name) VALUES ('Main Warehouse') RETURNING id`,
	).Scan(&warehouseID); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO locations (name) VALUES ('Storefront')`); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO stock_levels (product_id, location_id, quantity) VALUES ($1, $3, 100), ($2, $3, 50)`,
		tshirtID, mugID, warehouseID,
	); err != nil {
		return fmt.Errorf("seed stock levels: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
