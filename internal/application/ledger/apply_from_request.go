package ledger

import (
	"context"

	"github.com/tu-usuario/stockboard/internal/application/dto"
)

// ApplyFromRequest adapta el request HTTP al caso de uso
// ApplyTransaction(ctx, ApplyTransactionInput). Usar desde handlers HTTP.
func (uc *ApplyTransactionUseCase) ApplyFromRequest(ctx context.Context, in dto.ApplyTransactionRequest) error {
	input := ApplyTransactionInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		Type:       in.Type,
	}
	return uc.ApplyTransaction(ctx, input)
}
