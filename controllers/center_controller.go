package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/services"
)

// CenterController is the admin passthrough for distribution centers.
type CenterController struct {
	svc *services.CenterService
}

// NewCenterController creates the distribution center controller.
func NewCenterController(svc *services.CenterService) *CenterController {
	return &CenterController{svc: svc}
}

// List handles GET /distribution-centers.
func (ct *CenterController) List(c *gin.Context) {
	page, limit, search := listParams(c)
	res, err := ct.svc.List(c.Request.Context(), page, limit, search)
	respondResult(c, res, err)
}

// Create handles POST /distribution-centers.
func (ct *CenterController) Create(c *gin.Context) {
	var payload services.CenterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Create(c.Request.Context(), payload)
	respondResult(c, res, err)
}

// Update handles PUT /distribution-centers/:id.
func (ct *CenterController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload services.CenterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Update(c.Request.Context(), id, payload)
	respondResult(c, res, err)
}

// Deactivate handles PATCH /distribution-centers/:id/deactivate.
func (ct *CenterController) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ct.svc.Deactivate(c.Request.Context(), id)
	respondResult(c, res, err)
}
