package dto

// InventoryRowDTO fila del listado de inventario del dashboard.
type InventoryRowDTO struct {
	SKU       string `json:"sku"`
	Product   string `json:"product"`
	Location  string `json:"location"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
}

// DashboardResponse respuesta de GET /api/dashboard: inventario con joins
// más las listas maestras para los selectores de la vista.
type DashboardResponse struct {
	Inventory []InventoryRowDTO  `json:"inventory"`
	Products  []ProductResponse  `json:"products"`
	Locations []LocationResponse `json:"locations"`
}

// LowStockItemDTO producto por debajo de su umbral de reorden.
type LowStockItemDTO struct {
	ProductID int64  `json:"product_id"`
	SKU       string `json:"sku"`
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
	Deficit   int64  `json:"deficit"` // threshold - quantity
}
