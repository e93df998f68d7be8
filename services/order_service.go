package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// OrderRequest is the payload for creating or editing an order. Quantity is
// always 1 in current usage; the workflow controller fixes it.
type OrderRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// OrderData wraps the single order the platform returns from create/update.
type OrderData struct {
	Order models.Order `json:"order"`
}

// CancelRequest carries the reason recorded on a cancelled order.
type CancelRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// OrderService maps order operations onto platform endpoints.
type OrderService struct {
	gw *Gateway
}

// NewOrderService creates an order service over the shared gateway.
func NewOrderService(gw *Gateway) *OrderService {
	return &OrderService{gw: gw}
}

// List fetches one page of orders filtered by the free-text search.
func (s *OrderService) List(ctx context.Context, page, limit int, search string) (models.Result[models.OrderPage], error) {
	return Decode[models.OrderPage](s.gw.Do(ctx, http.MethodGet, "orders", listQuery(page, limit, search), nil))
}

// Create submits a new order; the platform assigns route, center and costs.
func (s *OrderService) Create(ctx context.Context, req OrderRequest) (models.Result[OrderData], error) {
	return Decode[OrderData](s.gw.Do(ctx, http.MethodPost, "orders", nil, req))
}

// Update resubmits the product selection of a pending order.
func (s *OrderService) Update(ctx context.Context, id int64, req OrderRequest) (models.Result[OrderData], error) {
	return Decode[OrderData](s.gw.Do(ctx, http.MethodPut, fmt.Sprintf("orders/%d/edit", id), nil, req))
}

// Confirm transitions a pending order to confirmed, debiting the customer's
// credit on the platform side.
func (s *OrderService) Confirm(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("orders/%d/confirm", id), nil, nil))
}

// Deliver transitions a confirmed order to delivered.
func (s *OrderService) Deliver(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("orders/%d/deliver", id), nil, nil))
}

// Cancel transitions a pending order to cancelled with a recorded reason.
func (s *OrderService) Cancel(ctx context.Context, id int64, reason string) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("orders/%d/cancel", id), nil, CancelRequest{CancellationReason: reason}))
}
