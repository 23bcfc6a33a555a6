package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockboard/internal/application/dashboard"
	"github.com/tu-usuario/stockboard/internal/application/ledger"
	"github.com/tu-usuario/stockboard/internal/application/usecase"
	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
	apphttp "github.com/tu-usuario/stockboard/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (suficientes para ejercitar los handlers)
// ──────────────────────────────────────────────────────────────────────────────

type pairKey struct{ productID, locationID int64 }

type fakeStore struct {
	mu        sync.Mutex
	products  map[int64]*entity.Product
	locations map[int64]*entity.Location
	stock     map[pairKey]int64
	records   []*entity.TransactionRecord
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[int64]*entity.Product),
		locations: make(map[int64]*entity.Location),
		stock:     make(map[pairKey]int64),
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextID++
	p.ID = r.s.nextID
	r.s.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		list = append(list, p)
	}
	return list, nil
}
func (r *fakeProductRepo) Count() (int64, error) { return int64(len(r.s.products)), nil }

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextID++
	l.ID = r.s.nextID
	r.s.locations[l.ID] = l
	return nil
}
func (r *fakeLocationRepo) GetByID(id int64) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.locations[id], nil
}
func (r *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Location
	for _, l := range r.s.locations {
		list = append(list, l)
	}
	return list, nil
}

type fakeStockRepo struct{ s *fakeStore }

func (r *fakeStockRepo) Get(productID, locationID int64) (*entity.StockLevel, error) {
	return r.GetForUpdate(productID, locationID)
}
func (r *fakeStockRepo) GetForUpdate(productID, locationID int64) (*entity.StockLevel, error) {
	return &entity.StockLevel{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   r.s.stock[pairKey{productID, locationID}],
	}, nil
}
func (r *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	r.s.stock[pairKey{level.ProductID, level.LocationID}] = level.Quantity
	return nil
}

type fakeTxRepo struct{ s *fakeStore }

func (r *fakeTxRepo) Create(record *entity.TransactionRecord) error {
	cp := *record
	r.s.nextID++
	cp.ID = r.s.nextID
	r.s.records = append(r.s.records, &cp)
	return nil
}
func (r *fakeTxRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.TransactionRecord, error) {
	var list []*entity.TransactionRecord
	for _, rec := range r.s.records {
		if filter.ProductID > 0 && rec.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID > 0 && rec.LocationID != filter.LocationID {
			continue
		}
		list = append(list, rec)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
func (r *fakeTxRepo) Count(filter repository.TransactionFilter) (int64, error) {
	var n int64
	for _, rec := range r.s.records {
		if filter.ProductID > 0 && rec.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID > 0 && rec.LocationID != filter.LocationID {
			continue
		}
		n++
	}
	return n, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockLevelRepository,
	txRepo repository.TransactionRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&fakeStockRepo{t.s}, &fakeTxRepo{t.s})
}

type fakeDashboardRepo struct{ s *fakeStore }

func (r *fakeDashboardRepo) ListInventory(ctx context.Context) ([]repository.InventoryRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var rows []repository.InventoryRow
	for key, qty := range r.s.stock {
		p := r.s.products[key.productID]
		l := r.s.locations[key.locationID]
		rows = append(rows, repository.InventoryRow{
			SKU: p.SKU, Product: p.Name, Location: l.Name,
			Quantity: qty, Threshold: p.Threshold,
		})
	}
	return rows, nil
}

func (r *fakeDashboardRepo) ListLowStock(ctx context.Context, locationID int64) ([]repository.LowStockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[int64]int64)
	for key, qty := range r.s.stock {
		if locationID > 0 && key.locationID != locationID {
			continue
		}
		totals[key.productID] += qty
	}
	var items []repository.LowStockItem
	for id, p := range r.s.products {
		if totals[id] < p.Threshold {
			items = append(items, repository.LowStockItem{
				ProductID: id, SKU: p.SKU, Product: p.Name,
				Quantity: totals[id], Threshold: p.Threshold,
			})
		}
	}
	return items, nil
}

// buildTestApp construye la app Fiber completa sobre el store en memoria,
// sembrado con TS-RED (id 1) y Main Warehouse (id 2).
func buildTestApp(t *testing.T) (*fiber.App, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	productRepo := &fakeProductRepo{store}
	locationRepo := &fakeLocationRepo{store}

	require.NoError(t, productRepo.Create(&entity.Product{SKU: "TS-RED", Name: "Red T-Shirt", Threshold: 10}))
	require.NoError(t, locationRepo.Create(&entity.Location{Name: "Main Warehouse"}))

	applyUC := ledger.NewApplyTransactionUseCase(&fakeTxRunner{store}, productRepo, locationRepo)
	historyUC := ledger.NewHistoryUseCase(&fakeTxRepo{store})
	dashboardUC := dashboard.NewUseCase(&fakeDashboardRepo{store}, productRepo, locationRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   productUC,
		LocationUC:  locationUC,
		ApplyTxUC:   applyUC,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
	})
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/transactions
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyTransaction_HTTP_Creado(t *testing.T) {
	app, store := buildTestApp(t)

	resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":100,"type":"IN"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(100), store.stock[pairKey{1, 2}])
	require.Len(t, store.records, 1)
	assert.Equal(t, int64(100), store.records[0].QtyChange)
}

func TestApplyTransaction_HTTP_StockInsuficiente(t *testing.T) {
	app, store := buildTestApp(t)
	resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":100,"type":"IN"}`)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":150,"type":"OUT"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
	assert.Equal(t, int64(100), store.stock[pairKey{1, 2}], "la cantidad no debe cambiar")
	assert.Len(t, store.records, 1, "el rechazo no genera registro")
}

func TestApplyTransaction_HTTP_Validacion(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"cantidad cero", `{"product_id":1,"location_id":2,"quantity":0,"type":"IN"}`},
		{"cantidad negativa", `{"product_id":1,"location_id":2,"quantity":-10,"type":"OUT"}`},
		{"tipo desconocido", `{"product_id":1,"location_id":2,"quantity":5,"type":"SIDEWAYS"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, store := buildTestApp(t)
			resp := postJSON(t, app, "/api/transactions", tc.body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "VALIDATION")
			assert.Empty(t, store.records, "la validación no debe tocar el almacén")
		})
	}
}

func TestApplyTransaction_HTTP_ProductoInexistente(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := postJSON(t, app, "/api/transactions", `{"product_id":99,"location_id":2,"quantity":5,"type":"IN"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestApplyTransaction_HTTP_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := postJSON(t, app, "/api/transactions", `{esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard y /api/transactions
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_HTTP_DevuelveInventarioYMaestros(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":60,"type":"IN"}`)
	resp.Body.Close()

	resp = get(t, app, "/api/dashboard")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Inventory []struct {
			SKU      string `json:"sku"`
			Location string `json:"location"`
			Quantity int64  `json:"quantity"`
		} `json:"inventory"`
		Products  []json.RawMessage `json:"products"`
		Locations []json.RawMessage `json:"locations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Inventory, 1)
	assert.Equal(t, "TS-RED", body.Inventory[0].SKU)
	assert.Equal(t, "Main Warehouse", body.Inventory[0].Location)
	assert.Equal(t, int64(60), body.Inventory[0].Quantity)
	assert.Len(t, body.Products, 1)
	assert.Len(t, body.Locations, 1)
}

func TestListTransactions_HTTP_FiltraPorProducto(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":10,"type":"IN"}`)
	resp.Body.Close()
	resp = postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":4,"type":"OUT"}`)
	resp.Body.Close()

	resp = get(t, app, "/api/transactions?product_id=1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total        int `json:"total"`
		Transactions []struct {
			Type      string `json:"type"`
			QtyChange int64  `json:"qty_change"`
		} `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)

	resp = get(t, app, "/api/transactions?product_id=42")
	defer resp.Body.Close()
	var empty struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.Equal(t, 0, empty.Total)
}

// Total es el total de registros que cumplen el filtro; la página puede ser
// más corta según limit/offset.
func TestListTransactions_HTTP_TotalIndependienteDePagina(t *testing.T) {
	app, _ := buildTestApp(t)
	for i := 0; i < 3; i++ {
		resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":10,"type":"IN"}`)
		resp.Body.Close()
	}

	resp := get(t, app, "/api/transactions?limit=2")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total        int               `json:"total"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Total)
	assert.Len(t, body.Transactions, 2)
}

func TestLowStock_HTTP(t *testing.T) {
	app, _ := buildTestApp(t)
	// TS-RED con umbral 10 y stock 3: debe aparecer en low-stock
	resp := postJSON(t, app, "/api/transactions", `{"product_id":1,"location_id":2,"quantity":3,"type":"IN"}`)
	resp.Body.Close()

	resp = get(t, app, "/api/inventory/low-stock")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total int `json:"total"`
		Items []struct {
			SKU     string `json:"sku"`
			Deficit int64  `json:"deficit"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "TS-RED", body.Items[0].SKU)
	assert.Equal(t, int64(7), body.Items[0].Deficit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos maestros
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_HTTP_DuplicadoYValidacion(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/products", `{"sku":"MUG-01","name":"Office Mug","threshold":25}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/products", `{"sku":"MUG-01","name":"Otro"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, app, "/api/products", `{"sku":"","name":"Sin SKU"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateLocation_HTTP(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/locations", `{"name":"Storefront"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/locations", `{"name":"  "}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
