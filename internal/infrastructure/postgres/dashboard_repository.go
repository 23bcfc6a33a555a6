package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only del dashboard sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ListInventory devuelve el inventario con joins a producto y ubicación.
func (r *DashboardRepo) ListInventory(ctx context.Context) ([]repository.InventoryRow, error) {
	query := `
		SELECT p.sku, p.name AS product, l.name AS location, s.quantity, p.threshold
		FROM stock_levels s
		JOIN products p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		ORDER BY p.sku, l.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.SKU, &row.Product, &row.Location, &row.Quantity, &row.Threshold); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListLowStock devuelve los productos cuyo stock actual está por debajo de su
// umbral. Si locationID > 0 considera el stock de esa ubicación; si no, el
// agregado de todas. Productos sin fila de stock cuentan como cantidad 0.
// Ordena por déficit descendente (mayor quiebre primero).
func (r *DashboardRepo) ListLowStock(ctx context.Context, locationID int64) ([]repository.LowStockItem, error) {
	var (
		query string
		args  []any
	)

	if locationID > 0 {
		query = `
			SELECT
				p.id,
				p.sku,
				p.name,
				COALESCE(s.quantity, 0) AS current_stock,
				p.threshold
			FROM products p
			LEFT JOIN stock_levels s ON s.product_id = p.id AND s.location_id = $1
			WHERE p.threshold > 0
			  AND COALESCE(s.quantity, 0) < p.threshold
			ORDER BY (p.threshold - COALESCE(s.quantity, 0)) DESC`
		args = []any{locationID}
	} else {
		query = `
			SELECT
				p.id,
				p.sku,
				p.name,
				COALESCE(SUM(s.quantity), 0) AS current_stock,
				p.threshold
			FROM products p
			LEFT JOIN stock_levels s ON s.product_id = p.id
			WHERE p.threshold > 0
			GROUP BY p.id, p.sku, p.name, p.threshold
			HAVING COALESCE(SUM(s.quantity), 0) < p.threshold
			ORDER BY (p.threshold - COALESCE(SUM(s.quantity), 0)) DESC`
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Product,
			&item.Quantity, &item.Threshold); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
