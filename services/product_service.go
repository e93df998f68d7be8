package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// ProductPayload is the admin-entered product record.
type ProductPayload struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	WeightKG    float64 `json:"weight_kg" binding:"gte=0"`
}

// ProductService maps product operations onto platform endpoints.
type ProductService struct {
	gw *Gateway
}

// NewProductService creates a product service over the shared gateway.
func NewProductService(gw *Gateway) *ProductService {
	return &ProductService{gw: gw}
}

// List fetches one page of products filtered by the free-text search.
func (s *ProductService) List(ctx context.Context, page, limit int, search string) (models.Result[models.ProductPage], error) {
	return Decode[models.ProductPage](s.gw.Do(ctx, http.MethodGet, "products", listQuery(page, limit, search), nil))
}

// Create registers a new product.
func (s *ProductService) Create(ctx context.Context, payload ProductPayload) (models.Result[models.Product], error) {
	return Decode[models.Product](s.gw.Do(ctx, http.MethodPost, "products", nil, payload))
}

// Update edits an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, payload ProductPayload) (models.Result[models.Product], error) {
	return Decode[models.Product](s.gw.Do(ctx, http.MethodPut, fmt.Sprintf("products/%d", id), nil, payload))
}

// Deactivate removes a product from the ordering catalog.
func (s *ProductService) Deactivate(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("products/%d/deactivate", id), nil, nil))
}
