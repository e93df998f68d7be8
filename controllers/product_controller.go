package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/services"
)

// ProductController is the passthrough for the product catalog. Customers
// read it to pick a product; admins maintain it.
type ProductController struct {
	svc *services.ProductService
}

// NewProductController creates the product controller.
func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{svc: svc}
}

// List handles GET /products.
func (ct *ProductController) List(c *gin.Context) {
	page, limit, search := listParams(c)
	res, err := ct.svc.List(c.Request.Context(), page, limit, search)
	respondResult(c, res, err)
}

// Create handles POST /products.
func (ct *ProductController) Create(c *gin.Context) {
	var payload services.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Create(c.Request.Context(), payload)
	respondResult(c, res, err)
}

// Update handles PUT /products/:id.
func (ct *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload services.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Update(c.Request.Context(), id, payload)
	respondResult(c, res, err)
}

// Deactivate handles PATCH /products/:id/deactivate.
func (ct *ProductController) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ct.svc.Deactivate(c.Request.Context(), id)
	respondResult(c, res, err)
}
