package repository

import "github.com/tu-usuario/stockboard/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar el stock
// por producto+ubicación. Usado dentro de transacciones para garantizar
// consistencia.
type StockLevelRepository interface {
	// Get devuelve el nivel actual; si no existe fila para el par,
	// devuelve un nivel con Quantity 0 (sin crearlo).
	Get(productID, locationID int64) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Si el
	// par no tiene fila, la crea con cantidad 0 antes de bloquearla, de modo
	// que las operaciones concurrentes sobre el par siempre se serialicen.
	GetForUpdate(productID, locationID int64) (*entity.StockLevel, error)
	// Upsert inserta o sobrescribe la cantidad del par.
	Upsert(level *entity.StockLevel) error
}
