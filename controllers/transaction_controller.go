package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/services"
)

// TransactionController is the admin passthrough for credit transactions.
// Transactions are append-only: recorded and listed, never edited.
type TransactionController struct {
	svc *services.TransactionService
}

// NewTransactionController creates the transaction controller.
func NewTransactionController(svc *services.TransactionService) *TransactionController {
	return &TransactionController{svc: svc}
}

// List handles GET /credit-transactions.
func (ct *TransactionController) List(c *gin.Context) {
	page, limit, search := listParams(c)
	res, err := ct.svc.List(c.Request.Context(), page, limit, search)
	respondResult(c, res, err)
}

// Create handles POST /credit-transactions.
func (ct *TransactionController) Create(c *gin.Context) {
	var payload services.TransactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	res, err := ct.svc.Create(c.Request.Context(), payload)
	respondResult(c, res, err)
}
