package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// ValidTransactionType indica si el tipo es uno de los reconocidos.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT
}

// TransactionRecord es el registro de auditoría de una operación del ledger.
// Inmutable: se crea exactamente una vez por operación aceptada y nunca se
// actualiza ni se borra.
type TransactionRecord struct {
	ID         int64
	Reference  string // id de operación (uuid), asignado por el ledger
	ProductID  int64
	LocationID int64
	Type       string // IN u OUT
	QtyChange  int64  // positivo para IN, negativo para OUT
	CreatedAt  time.Time
}
