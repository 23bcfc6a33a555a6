package repository

import "github.com/tu-usuario/stockboard/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	List(limit, offset int) ([]*entity.Location, error)
}
