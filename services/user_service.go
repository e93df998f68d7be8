package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// UserPayload is the admin-entered platform account record.
type UserPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin customer"`
}

// UserService maps user administration onto platform endpoints.
type UserService struct {
	gw *Gateway
}

// NewUserService creates a user service over the shared gateway.
func NewUserService(gw *Gateway) *UserService {
	return &UserService{gw: gw}
}

// List fetches one page of users filtered by the free-text search.
func (s *UserService) List(ctx context.Context, page, limit int, search string) (models.Result[models.UserPage], error) {
	return Decode[models.UserPage](s.gw.Do(ctx, http.MethodGet, "users", listQuery(page, limit, search), nil))
}

// Create registers a new platform account.
func (s *UserService) Create(ctx context.Context, payload UserPayload) (models.Result[models.User], error) {
	return Decode[models.User](s.gw.Do(ctx, http.MethodPost, "users", nil, payload))
}

// Update edits an existing platform account.
func (s *UserService) Update(ctx context.Context, id int64, payload UserPayload) (models.Result[models.User], error) {
	return Decode[models.User](s.gw.Do(ctx, http.MethodPut, fmt.Sprintf("users/%d", id), nil, payload))
}

// Deactivate disables a platform account.
func (s *UserService) Deactivate(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("users/%d/deactivate", id), nil, nil))
}
