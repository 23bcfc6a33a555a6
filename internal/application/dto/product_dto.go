package dto

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Threshold *int64 `json:"threshold,omitempty"` // default 10 si se omite
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        int64  `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}
