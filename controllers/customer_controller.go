package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/services"
)

// CustomerController is the admin passthrough for customer records.
type CustomerController struct {
	svc *services.CustomerService
}

// NewCustomerController creates the customer controller.
func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{svc: svc}
}

// List handles GET /customers.
func (ct *CustomerController) List(c *gin.Context) {
	page, limit, search := listParams(c)
	res, err := ct.svc.List(c.Request.Context(), page, limit, search)
	respondResult(c, res, err)
}

// Create handles POST /customers.
func (ct *CustomerController) Create(c *gin.Context) {
	var payload services.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Create(c.Request.Context(), payload)
	respondResult(c, res, err)
}

// Update handles PUT /customers/:id.
func (ct *CustomerController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload services.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Update(c.Request.Context(), id, payload)
	respondResult(c, res, err)
}

// Deactivate handles PATCH /customers/:id/deactivate.
func (ct *CustomerController) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ct.svc.Deactivate(c.Request.Context(), id)
	respondResult(c, res, err)
}

// Me handles GET /customer/profile: the customer record bound to the
// session, shown for the credit balance.
func (ct *CustomerController) Me(c *gin.Context) {
	res, err := ct.svc.Current(c.Request.Context())
	respondResult(c, res, err)
}
