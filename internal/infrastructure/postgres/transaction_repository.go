package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: los registros de auditoría son inmutables.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un registro de auditoría.
func (r *TransactionRepo) Create(record *entity.TransactionRecord) error {
	query := `
		INSERT INTO transactions (reference, product_id, location_id, type, qty_change, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.Reference, record.ProductID, record.LocationID,
		record.Type, record.QtyChange, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("create transaction record: %w", err)
	}
	return nil
}

// List lista registros con filtros opcionales por producto/ubicación,
// más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.TransactionRecord, error) {
	query := `
		SELECT id, reference, product_id, location_id, type, qty_change, created_at
		FROM transactions WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID > 0 {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID > 0 {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionRecord
	for rows.Next() {
		var t entity.TransactionRecord
		if err := rows.Scan(&t.ID, &t.Reference, &t.ProductID, &t.LocationID,
			&t.Type, &t.QtyChange, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction record: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count total de registros que cumplen el filtro, sin paginación.
func (r *TransactionRepo) Count(filter repository.TransactionFilter) (int64, error) {
	query := `SELECT count(*) FROM transactions WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID > 0 {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID > 0 {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
	}
	var n int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
