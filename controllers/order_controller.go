package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/middleware"
	"github.com/dronexpress/console-api/routeview"
	"github.com/dronexpress/console-api/services"
	"github.com/dronexpress/console-api/workflow"
)

// OrderController drives the order workflow over HTTP. Each handler resolves
// the session's workflow controller, applies the user's intent and returns
// the resulting view state plus any queued notifications.
type OrderController struct {
	registry *Registry
}

// NewOrderController creates the order controller over a session registry.
func NewOrderController(registry *Registry) *OrderController {
	return &OrderController{registry: registry}
}

// session resolves the workflow controller for the authenticated session.
func (o *OrderController) session(c *gin.Context) (*workflow.Controller, *workflow.Queue) {
	store := middleware.SessionFrom(c)
	return o.registry.Session(c, store.Role())
}

// List handles GET /orders: positions the view and returns the page.
func (o *OrderController) List(c *gin.Context) {
	ctl, notes := o.session(c)
	page, _, search := listParams(c)
	ctx := c.Request.Context()
	if handleError(c, ctl.List(ctx, page, search)) {
		return
	}
	if handleError(c, ctl.EnsureCustomer(ctx)) {
		return
	}
	data := gin.H{
		"orders":    ctl.Orders(),
		"total":     ctl.Total(),
		"page":      ctl.Page(),
		"page_size": ctl.PageSize(),
	}
	if customer := ctl.Customer(); customer != nil {
		data["customer"] = customer
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"data":          data,
		"notifications": notes.Drain(),
	})
}

// Create handles POST /orders: submits a one-unit order and hands back the
// confirmation prompt the workflow auto-opened for it.
func (o *OrderController) Create(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ctl, notes := o.session(c)
	if handleError(c, ctl.Create(c.Request.Context(), req.ProductID)) {
		return
	}
	o.respondPrompt(c, ctl, notes)
}

// Edit handles PUT /orders/:id/edit for pending orders.
func (o *OrderController) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ctl, notes := o.session(c)
	if handleError(c, ctl.Edit(c.Request.Context(), id, req.ProductID)) {
		return
	}
	o.respondPrompt(c, ctl, notes)
}

// Summary handles GET /orders/:id/summary: opens the confirmation prompt.
func (o *OrderController) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctl, notes := o.session(c)
	prompt, err := ctl.OpenConfirmByID(id)
	if handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"data":          gin.H{"prompt": prompt},
		"notifications": notes.Drain(),
	})
}

// Dismiss handles DELETE /orders/:id/summary: closes the prompt unconfirmed.
func (o *OrderController) Dismiss(c *gin.Context) {
	if _, ok := pathID(c); !ok {
		return
	}
	ctl, notes := o.session(c)
	ctl.DismissConfirm()
	c.JSON(http.StatusOK, gin.H{"status": "success", "notifications": notes.Drain()})
}

// Confirm handles PATCH /orders/:id/confirm.
func (o *OrderController) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctl, notes := o.session(c)
	if handleError(c, ctl.Confirm(c.Request.Context(), id)) {
		return
	}
	o.respondListing(c, ctl, notes)
}

// Cancel handles PATCH /orders/:id/cancel. The body's cancellation reason is
// optional; the workflow records a default when it is missing.
func (o *OrderController) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}
	ctl, notes := o.session(c)
	if handleError(c, ctl.Cancel(c.Request.Context(), id, req.CancellationReason)) {
		return
	}
	o.respondListing(c, ctl, notes)
}

// Deliver handles PATCH /orders/:id/deliver, admin only.
func (o *OrderController) Deliver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctl, notes := o.session(c)
	if handleError(c, ctl.Deliver(c.Request.Context(), id)) {
		return
	}
	o.respondListing(c, ctl, notes)
}

// Route handles GET /orders/:id/route: the projected geometry as JSON.
func (o *OrderController) Route(c *gin.Context) {
	ctl, _ := o.session(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, found := ctl.OrderByID(id)
	if !found {
		handleError(c, workflow.ErrOrderNotFound)
		return
	}
	points := routeview.Project(order.DeliveryRoute)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"points": points,
			"path":   routeview.PathData(points),
			"stops":  len(order.DeliveryRoute),
		},
	})
}

// RouteSVG handles GET /orders/:id/route.svg: the rendered map diagram. The
// selected query parameter toggles the detail callout for one stop.
func (o *OrderController) RouteSVG(c *gin.Context) {
	ctl, _ := o.session(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, found := ctl.OrderByID(id)
	if !found {
		handleError(c, workflow.ErrOrderNotFound)
		return
	}
	// selected is the 1-based stop number; absent means no callout.
	selected := queryInt(c, "selected", 0) - 1
	c.Data(http.StatusOK, "image/svg+xml", []byte(routeview.RenderSVG(order, selected)))
}

// respondPrompt returns the open confirmation prompt after create/edit.
func (o *OrderController) respondPrompt(c *gin.Context, ctl *workflow.Controller, notes *workflow.Queue) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"prompt": ctl.Prompt(),
			"orders": ctl.Orders(),
			"total":  ctl.Total(),
		},
		"notifications": notes.Drain(),
	})
}

// respondListing returns the refreshed listing after a transition.
func (o *OrderController) respondListing(c *gin.Context, ctl *workflow.Controller, notes *workflow.Queue) {
	data := gin.H{
		"orders": ctl.Orders(),
		"total":  ctl.Total(),
	}
	if customer := ctl.Customer(); customer != nil {
		data["customer"] = customer
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"data":          data,
		"notifications": notes.Drain(),
	})
}
