package dto

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationListResponse respuesta de GET /api/locations.
type LocationListResponse struct {
	Total     int                `json:"total"`
	Locations []LocationResponse `json:"locations"`
}
