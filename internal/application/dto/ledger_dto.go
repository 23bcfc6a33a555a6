package dto

import "time"

// ApplyTransactionRequest body para POST /api/transactions.
type ApplyTransactionRequest struct {
	ProductID  int64  `json:"product_id"`
	LocationID int64  `json:"location_id"`
	Quantity   int64  `json:"quantity"`
	Type       string `json:"type"` // IN u OUT
}

// TransactionResponse representación de un registro de auditoría.
type TransactionResponse struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	ProductID  int64     `json:"product_id"`
	LocationID int64     `json:"location_id"`
	Type       string    `json:"type"`
	QtyChange  int64     `json:"qty_change"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionListResponse respuesta de GET /api/transactions.
// Total es el total de registros que cumplen el filtro (no la página).
type TransactionListResponse struct {
	Total        int                   `json:"total"`
	Transactions []TransactionResponse `json:"transactions"`
}
