package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockboard/internal/application/dto"
	"github.com/tu-usuario/stockboard/internal/application/ledger"
	"github.com/tu-usuario/stockboard/internal/domain"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// LedgerHandler maneja las peticiones HTTP de transacciones de stock.
type LedgerHandler struct {
	applyUC   *ledger.ApplyTransactionUseCase
	historyUC *ledger.HistoryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(applyUC *ledger.ApplyTransactionUseCase, historyUC *ledger.HistoryUseCase) *LedgerHandler {
	return &LedgerHandler{applyUC: applyUC, historyUC: historyUC}
}

// ApplyTransaction godoc
// @Summary      Registrar transacción de stock (IN/OUT)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyTransactionRequest  true  "product_id, location_id, quantity (positiva), type (IN|OUT)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *LedgerHandler) ApplyTransaction(c *fiber.Ctx) error {
	var in dto.ApplyTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.applyUC.ApplyFromRequest(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser positiva y type IN u OUT"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "transacción registrada"})
}

// ListTransactions godoc
// @Summary      Listar registro de auditoría
// @Tags         transactions
// @Produce      json
// @Param        product_id   query  int  false  "Filtrar por producto"
// @Param        location_id  query  int  false  "Filtrar por ubicación"
// @Param        limit        query  int  false  "Límite"   default(20)
// @Param        offset       query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *LedgerHandler) ListTransactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		ProductID:  int64(c.QueryInt("product_id", 0)),
		LocationID: int64(c.QueryInt("location_id", 0)),
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.historyUC.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
