package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/services"
)

// UserController is the admin passthrough for platform accounts.
type UserController struct {
	svc *services.UserService
}

// NewUserController creates the user controller.
func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// List handles GET /users.
func (ct *UserController) List(c *gin.Context) {
	page, limit, search := listParams(c)
	res, err := ct.svc.List(c.Request.Context(), page, limit, search)
	respondResult(c, res, err)
}

// Create handles POST /users.
func (ct *UserController) Create(c *gin.Context) {
	var payload services.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Create(c.Request.Context(), payload)
	respondResult(c, res, err)
}

// Update handles PUT /users/:id.
func (ct *UserController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload services.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Update(c.Request.Context(), id, payload)
	respondResult(c, res, err)
}

// Deactivate handles PATCH /users/:id/deactivate.
func (ct *UserController) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ct.svc.Deactivate(c.Request.Context(), id)
	respondResult(c, res, err)
}
