package repository

import "context"

// InventoryRow es una fila del dashboard: stock × producto × ubicación.
type InventoryRow struct {
	SKU       string
	Product   string
	Location  string
	Quantity  int64
	Threshold int64
}

// LowStockItem es un producto cuyo stock está por debajo de su umbral.
type LowStockItem struct {
	ProductID int64
	SKU       string
	Product   string
	Quantity  int64
	Threshold int64
}

// DashboardRepository define el puerto de consultas read-only del dashboard.
// Nunca muta el almacén.
type DashboardRepository interface {
	ListInventory(ctx context.Context) ([]InventoryRow, error)
	ListLowStock(ctx context.Context, locationID int64) ([]LowStockItem, error)
}
