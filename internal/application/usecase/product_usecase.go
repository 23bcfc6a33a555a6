package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/stockboard/internal/application/dto"
	"github.com/tu-usuario/stockboard/internal/domain"
	"github.com/tu-usuario/stockboard/internal/domain/entity"
	"github.com/tu-usuario/stockboard/internal/domain/repository"
)

// defaultThreshold umbral de reorden si el request no lo indica.
const defaultThreshold = 10

// ProductUseCase casos de uso para productos (datos maestros). El stock no
// se toca aquí: se maneja exclusivamente vía transacciones del ledger.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. SKU único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	threshold := int64(defaultThreshold)
	if in.Threshold != nil {
		if *in.Threshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.Threshold
	}
	existing, _ := uc.repo.GetBySKU(sku)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		SKU:       sku,
		Name:      strings.TrimSpace(in.Name),
		Threshold: threshold,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Total: len(items), Products: items}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Threshold: p.Threshold,
	}
}
