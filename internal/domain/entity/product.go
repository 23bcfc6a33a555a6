package entity

import "time"

// Product representa un producto del catálogo, identificado por su SKU.
// Threshold es el umbral de reorden: solo informativo para el dashboard y
// las alertas de stock bajo, no se valida al registrar transacciones.
type Product struct {
	ID        int64
	SKU       string // código único
	Name      string
	Threshold int64 // umbral de reorden (default 10)
	CreatedAt time.Time
}
