package repository

import "github.com/tu-usuario/stockboard/internal/domain/entity"

// TransactionFilter filtros opcionales para listar transacciones.
// ProductID/LocationID en cero significan "sin filtro".
type TransactionFilter struct {
	ProductID  int64
	LocationID int64
}

// TransactionRepository define el puerto de persistencia para el registro
// de auditoría. Solo inserción y lectura: los registros son inmutables.
type TransactionRepository interface {
	Create(record *entity.TransactionRecord) error
	List(filter TransactionFilter, limit, offset int) ([]*entity.TransactionRecord, error)
	// Count devuelve el total de registros que cumplen el filtro,
	// independiente de la paginación.
	Count(filter TransactionFilter) (int64, error)
}
