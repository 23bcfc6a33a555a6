package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockboard/internal/application/dashboard"
	"github.com/tu-usuario/stockboard/internal/application/ledger"
	"github.com/tu-usuario/stockboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	ApplyTxUC   *ledger.ApplyTransactionUseCase
	HistoryUC   *ledger.HistoryUseCase
	DashboardUC *dashboard.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard (vista de inventario)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/inventory/low-stock", dashboardHandler.GetLowStock)

	// Transacciones de stock (ledger)
	ledgerHandler := NewLedgerHandler(deps.ApplyTxUC, deps.HistoryUC)
	transactions := api.Group("/transactions")
	transactions.Post("/", ledgerHandler.ApplyTransaction)
	transactions.Get("/", ledgerHandler.ListTransactions)

	// Products (datos maestros)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Locations (datos maestros)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
}
