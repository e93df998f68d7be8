package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// CenterPayload is the admin-entered distribution center record.
type CenterPayload struct {
	Name          string  `json:"name" binding:"required"`
	Latitude      float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude     float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	MaxDroneRange float64 `json:"max_drone_range" binding:"required,gt=0"`
	IsMain        bool    `json:"is_main"`
}

// CenterService maps distribution center operations onto platform endpoints.
type CenterService struct {
	gw *Gateway
}

// NewCenterService creates a distribution center service over the shared gateway.
func NewCenterService(gw *Gateway) *CenterService {
	return &CenterService{gw: gw}
}

// List fetches one page of distribution centers filtered by the free-text search.
func (s *CenterService) List(ctx context.Context, page, limit int, search string) (models.Result[models.DistributionCenterPage], error) {
	return Decode[models.DistributionCenterPage](s.gw.Do(ctx, http.MethodGet, "distribution-centers", listQuery(page, limit, search), nil))
}

// Create registers a new distribution center.
func (s *CenterService) Create(ctx context.Context, payload CenterPayload) (models.Result[models.DistributionCenter], error) {
	return Decode[models.DistributionCenter](s.gw.Do(ctx, http.MethodPost, "distribution-centers", nil, payload))
}

// Update edits an existing distribution center.
func (s *CenterService) Update(ctx context.Context, id int64, payload CenterPayload) (models.Result[models.DistributionCenter], error) {
	return Decode[models.DistributionCenter](s.gw.Do(ctx, http.MethodPut, fmt.Sprintf("distribution-centers/%d", id), nil, payload))
}

// Deactivate takes a distribution center out of routing.
func (s *CenterService) Deactivate(ctx context.Context, id int64) (models.Result[models.Empty], error) {
	return Decode[models.Empty](s.gw.Do(ctx, http.MethodPatch, fmt.Sprintf("distribution-centers/%d/deactivate", id), nil, nil))
}
