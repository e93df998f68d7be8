package services

import (
	"context"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// TransactionPayload records a credit top-up for a customer.
type TransactionPayload struct {
	CustomerID  int64   `json:"customer_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// TransactionService maps credit transaction operations onto platform endpoints.
type TransactionService struct {
	gw *Gateway
}

// NewTransactionService creates a transaction service over the shared gateway.
func NewTransactionService(gw *Gateway) *TransactionService {
	return &TransactionService{gw: gw}
}

// List fetches one page of credit transactions filtered by the free-text search.
func (s *TransactionService) List(ctx context.Context, page, limit int, search string) (models.Result[models.CreditTransactionPage], error) {
	return Decode[models.CreditTransactionPage](s.gw.Do(ctx, http.MethodGet, "credit-transactions", listQuery(page, limit, search), nil))
}

// Create records a credit top-up.
func (s *TransactionService) Create(ctx context.Context, payload TransactionPayload) (models.Result[models.CreditTransaction], error) {
	return Decode[models.CreditTransaction](s.gw.Do(ctx, http.MethodPost, "credit-transactions", nil, payload))
}
