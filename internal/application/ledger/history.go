package ledger

import (
	"github.com/tu-usuario/stockboard/internal/application/dto"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// HistoryUseCase lista el registro de auditoría del ledger (read-only).
type HistoryUseCase struct {
	txRepo repository.TransactionRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(txRepo repository.TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{txRepo: txRepo}
}

// List devuelve una página de transacciones con filtros opcionales por
// producto/ubicación. Total es el total de registros que cumplen el filtro,
// no el tamaño de la página.
func (uc *HistoryUseCase) List(filter repository.TransactionFilter, limit, offset int) (*dto.TransactionListResponse, error) {
	records, err := uc.txRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.txRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.TransactionListResponse{
		Total:        int(total),
		Transactions: make([]dto.TransactionResponse, 0, len(records)),
	}
	for _, r := range records {
		out.Transactions = append(out.Transactions, dto.TransactionResponse{
			ID:         r.ID,
			Reference:  r.Reference,
			ProductID:  r.ProductID,
			LocationID: r.LocationID,
			Type:       r.Type,
			QtyChange:  r.QtyChange,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}
