// Package dashboard contiene la fachada de consultas read-only: la vista de
// inventario (stock × producto × ubicación) y las alertas de stock bajo.
package dashboard

import (
	"context"

	"github.com/tu-usuario/stockboard/internal/application/dto"
	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// masterListLimit tope de las listas maestras para los selectores de la vista.
const masterListLimit = 200

// UseCase arma la respuesta del dashboard. Nunca muta el almacén; todo
// acceso a datos se delega en los repositorios.
type UseCase struct {
	dashboardRepo repository.DashboardRepository
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	dashboardRepo repository.DashboardRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		dashboardRepo: dashboardRepo,
		productRepo:   productRepo,
		locationRepo:  locationRepo,
	}
}

// GetDashboard construye el DashboardResponse.
//
// Tres consultas en paralelo:
//  1. ListInventory     → filas con joins producto/ubicación
//  2. ProductRepo.List  → lista maestra de productos
//  3. LocationRepo.List → lista maestra de ubicaciones
func (uc *UseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type inventoryResult struct {
		rows []repository.InventoryRow
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type locationsResult struct {
		list []*entity.Location
		err  error
	}

	invCh := make(chan inventoryResult, 1)
	prodCh := make(chan productsResult, 1)
	locCh := make(chan locationsResult, 1)

	go func() {
		rows, err := uc.dashboardRepo.ListInventory(ctx)
		invCh <- inventoryResult{rows, err}
	}()
	go func() {
		list, err := uc.productRepo.List(masterListLimit, 0)
		prodCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.locationRepo.List(masterListLimit, 0)
		locCh <- locationsResult{list, err}
	}()

	inv := <-invCh
	prods := <-prodCh
	locs := <-locCh

	if inv.err != nil {
		return nil, inv.err
	}
	if prods.err != nil {
		return nil, prods.err
	}
	if locs.err != nil {
		return nil, locs.err
	}

	resp := &dto.DashboardResponse{
		Inventory: make([]dto.InventoryRowDTO, 0, len(inv.rows)),
		Products:  make([]dto.ProductResponse, 0, len(prods.list)),
		Locations: make([]dto.LocationResponse, 0, len(locs.list)),
	}
	for _, r := range inv.rows {
		resp.Inventory = append(resp.Inventory, dto.InventoryRowDTO{
			SKU:       r.SKU,
			Product:   r.Product,
			Location:  r.Location,
			Quantity:  r.Quantity,
			Threshold: r.Threshold,
		})
	}
	for _, p := range prods.list {
		resp.Products = append(resp.Products, dto.ProductResponse{
			ID: p.ID, SKU: p.SKU, Name: p.Name, Threshold: p.Threshold,
		})
	}
	for _, l := range locs.list {
		resp.Locations = append(resp.Locations, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return resp, nil
}

// GetLowStock devuelve los productos cuyo stock (en la ubicación indicada, o
// el agregado de todas si locationID es 0) está por debajo de su umbral,
// ordenados por déficit descendente.
func (uc *UseCase) GetLowStock(ctx context.Context, locationID int64) ([]dto.LowStockItemDTO, error) {
	items, err := uc.dashboardRepo.ListLowStock(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemDTO{
			ProductID: it.ProductID,
			SKU:       it.SKU,
			Product:   it.Product,
			Quantity:  it.Quantity,
			Threshold: it.Threshold,
			Deficit:   it.Threshold - it.Quantity,
		})
	}
	return out, nil
}
