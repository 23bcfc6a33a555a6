package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockboard/internal/domain"
	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// ApplyTransactionUseCase aplica transacciones de stock (IN/OUT) de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino de escritura sobre stock_levels y transactions.
type ApplyTransactionUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewApplyTransactionUseCase construye el caso de uso.
func NewApplyTransactionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *ApplyTransactionUseCase {
	return &ApplyTransactionUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ApplyTransactionInput entrada para aplicar una transacción de stock.
type ApplyTransactionInput struct {
	ProductID  int64
	LocationID int64
	Quantity   int64 // siempre positiva; el signo lo determina Type
	Type       string
}

// ApplyTransaction valida la entrada, verifica que producto y ubicación
// existan y aplica el cambio dentro de una transacción de BD:
//
//  1. Bloquea la fila de stock del par (si no existe, se crea en cero para
//     poder bloquearla).
//  2. Calcula newQty = actual ± Quantity según el tipo.
//  3. Si newQty < 0 devuelve domain.ErrInsufficientStock y no escribe nada.
//  4. Si no, upsert del nivel de stock e inserción del registro de auditoría
//     con el delta firmado; ambas escrituras se confirman o revierten juntas.
func (uc *ApplyTransactionUseCase) ApplyTransaction(ctx context.Context, input ApplyTransactionInput) error {
	if input.Quantity <= 0 || !entity.ValidTransactionType(input.Type) {
		return domain.ErrInvalidInput
	}
	if input.ProductID <= 0 || input.LocationID <= 0 {
		return domain.ErrInvalidInput
	}

	// Validar que producto y ubicación existan como registros maestros
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}

	delta := input.Quantity
	if input.Type == entity.TransactionTypeOUT {
		delta = -input.Quantity
	}

	now := time.Now()
	reference := uuid.New().String()

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLevelRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquea la fila del par para evitar lost updates entre
		// operaciones concurrentes sobre el mismo (producto, ubicación)
		level, err := stockRepo.GetForUpdate(input.ProductID, input.LocationID)
		if err != nil {
			return err
		}
		newQty := level.Quantity + delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		level.Quantity = newQty
		level.UpdatedAt = now
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}
		record := &entity.TransactionRecord{
			Reference:  reference,
			ProductID:  input.ProductID,
			LocationID: input.LocationID,
			Type:       input.Type,
			QtyChange:  delta,
			CreatedAt:  now,
		}
		return txRepo.Create(record)
	})
}
