package entity

import "time"

// StockLevel representa la cantidad actual de un producto en una ubicación.
// Clave compuesta (ProductID, LocationID); se crea implícitamente con la
// primera transacción del par. Invariante: Quantity >= 0 siempre.
type StockLevel struct {
	ProductID  int64
	LocationID int64
	Quantity   int64
	UpdatedAt  time.Time
}
