package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// CustomerPayload is the admin-entered customer record.
type CustomerPayload struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address" binding:"required"`
	Latitude      float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude     float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	CreditBalance float64 `json:"credit_balance" binding:"gte=0"`
}

// CustomerService maps customer operations onto platform endpoints.
type CustomerService struct {
	gw *Gateway
}

// NewCustomerService creates a customer service over the shared gateway.
func NewCustomerService(gw *Gateway) *CustomerService {
	return &CustomerService{gw: gw}
}

// List fetches one page of customers filtered by the free-text search.
func (s *CustomerService) List(ctx context.Context, page, limit int, search string) (models.Result[models.CustomerPage], error) {
	return Decode[models.CustomerPage](s.gw.Do(ctx, http.MethodGet, "customers", listQuery(page, limit, search), nil))
}

// Create registers a new customer.
func (s *CustomerService) Create(ctx context.Context, payload CustomerPayload) (models.Result[models.Customer], error) {
	return Decode[models.Customer](s.gw.Do(ctx, http.MethodPost, "customers", nil, payload))
}

// Update edits an existing customer.
func (s *CustomerService) Update(ctx context.Context, id int64, payload CustomerPayload) (models.Result[models.Customer], error) {
	return Decode[models.Customer](s.gw.Do(ctx, http.MethodPut, fmt.Sprintf("customers/%d", id), nil, payload))
}

// Deactivate disables a customer account.
func (s *CustomerService) Deactivate(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("customers/%d/deactivate", id), nil, nil))
}

// Current fetches the customer record bound to the authenticated user. The
// orders page polls this for the credit balance before and after
// confirmation.
func (s *CustomerService) Current(ctx context.Context) (models.Result[models.Customer], error) {
	return Decode[models.Customer](s.gw.Do(ctx, http.MethodGet, "customers/me", nil, nil))
}
