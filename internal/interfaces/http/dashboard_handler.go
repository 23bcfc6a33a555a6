package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockboard/internal/application/dashboard"
	"github.com/tu-usuario/stockboard/internal/application/dto"
)

// DashboardHandler maneja los endpoints de la vista de inventario.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Vista de inventario
// @Description  Inventario con joins producto/ubicación más las listas
// @Description  maestras para los selectores de la vista.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Productos por debajo del umbral de reorden
// @Tags         dashboard
// @Produce      json
// @Param        location_id  query  int  false  "Filtrar por ubicación. Vacío = stock agregado."
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	locationID := int64(c.QueryInt("location_id", 0))
	items, err := h.uc.GetLowStock(c.Context(), locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(items),
		"items": items,
	})
}
