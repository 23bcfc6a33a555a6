package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene el nivel actual de un producto en una ubicación.
// Fila ausente se devuelve como cantidad 0, sin crearla.
func (r *StockLevelRepo) Get(productID, locationID int64) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1 AND location_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, LocationID: locationID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el nivel y bloquea la fila para update (SELECT FOR
// UPDATE). Si el par no tiene fila todavía, la materializa en cero y vuelve a
// seleccionar: FOR UPDATE sobre cero filas no bloquea nada, y sin fila que
// bloquear las primeras transacciones concurrentes de un par no se
// serializarían entre sí.
func (r *StockLevelRepo) GetForUpdate(productID, locationID int64) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO stock_levels (product_id, location_id, quantity)
			VALUES ($1, $2, 0)
			ON CONFLICT (product_id, location_id) DO NOTHING`
		if _, insErr := r.q.Exec(context.Background(), insert, productID, locationID); insErr != nil {
			return nil, fmt.Errorf("init stock level: %w", insErr)
		}
		err = r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
			&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o sobrescribe la cantidad del par (producto, ubicación).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ProductID, level.LocationID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}
