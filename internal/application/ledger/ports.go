package ledger

import (
	"context"

	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: el
// upsert de stock y el registro de auditoría se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
