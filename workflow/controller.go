// Package workflow owns the order listing state and drives every lifecycle
// transition a console user can trigger. One Controller lives per browser
// session; handlers feed it user intent and read its state back.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dronexpress/console-api/models"
	"github.com/dronexpress/console-api/services"
)

const (
	// DefaultPageSize matches the fixed page length of the listing table.
	DefaultPageSize = 10
	// DefaultCancellationReason is recorded when the caller gives none.
	DefaultCancellationReason = "Order cancelled by the customer"
)

var (
	// ErrOrderNotFound means the order is not on the currently loaded page.
	ErrOrderNotFound = errors.New("order not found in current listing")
	// ErrActionNotAllowed means the order's status or the session role has
	// no edge for the requested transition.
	ErrActionNotAllowed = errors.New("action not allowed for this order")
	// ErrNoPendingPrompt means confirm was called without the summary dialog
	// being acknowledged first.
	ErrNoPendingPrompt = errors.New("no confirmation pending for this order")
)

// OrdersAPI is the slice of the order service the controller drives.
type OrdersAPI interface {
	List(ctx context.Context, page, limit int, search string) (models.Result[models.OrderPage], error)
	Create(ctx context.Context, req services.OrderRequest) (models.Result[services.OrderData], error)
	Update(ctx context.Context, id int64, req services.OrderRequest) (models.Result[services.OrderData], error)
	Confirm(ctx context.Context, id int64) (models.Result[models.Empty], error)
	Deliver(ctx context.Context, id int64) (models.Result[models.Empty], error)
	Cancel(ctx context.Context, id int64, reason string) (models.Result[models.Empty], error)
}

// CustomersAPI is the slice of the customer service the controller needs for
// the credit balance display.
type CustomersAPI interface {
	Current(ctx context.Context) (models.Result[models.Customer], error)
}

// ConfirmPrompt is the open confirmation dialog: the order being confirmed
// plus its rendered route line. Confirm only fires while one is open.
type ConfirmPrompt struct {
	Order     models.Order `json:"order"`
	RouteLine string       `json:"route_line"`
}

// Controller owns one user's paginated, searchable order list and gates
// every status transition. All methods are safe for concurrent use.
type Controller struct {
	svc       OrdersAPI
	customers CustomersAPI
	notifier  Notifier
	role      string

	// fetchSeq numbers list fetches; a response is applied only if it is
	// still the newest issued, so a slow superseded fetch can never
	// overwrite fresher state.
	fetchSeq atomic.Uint64

	mu       sync.Mutex
	orders   []models.Order
	total    int
	page     int
	pageSize int
	search   string
	loading  bool
	customer *models.Customer
	prompt   *ConfirmPrompt
}

// New creates a controller for one session with the given role.
func New(svc OrdersAPI, customers CustomersAPI, role string, notifier Notifier) *Controller {
	return &Controller{
		svc:       svc,
		customers: customers,
		notifier:  notifier,
		role:      role,
		page:      1,
		pageSize:  DefaultPageSize,
	}
}

// List positions the view on a page and search term and fetches it.
func (c *Controller) List(ctx context.Context, page int, search string) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if search != c.search {
		// New search restarts from the first page.
		page = 1
	}
	c.page = page
	c.search = search
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPage moves to a page and refetches.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	search := c.search
	c.mu.Unlock()
	return c.List(ctx, page, search)
}

// SetSearch applies a search term, resets to the first page and refetches.
func (c *Controller) SetSearch(ctx context.Context, search string) error {
	return c.List(ctx, 1, search)
}

// Refresh fetches the current page. Any failure resets the view to an empty
// list and zero total rather than keeping stale rows. A response that was
// superseded by a newer fetch is discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	page, size, search := c.page, c.pageSize, c.search
	c.mu.Unlock()

	seq := c.fetchSeq.Add(1)
	res, err := c.svc.List(ctx, page, size, search)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq.Load() {
		// A newer fetch is in flight or already applied.
		return nil
	}
	c.loading = false
	if err != nil {
		c.orders = nil
		c.total = 0
		return err
	}
	if !res.Ok() {
		c.orders = nil
		c.total = 0
		c.notifier.Error("Failed to fetch orders: " + res.Message())
		return nil
	}
	pageData := res.Value()
	c.orders = pageData.Orders
	c.total = pageData.Total
	return nil
}

// EnsureCustomer loads the credit balance once for customer sessions.
func (c *Controller) EnsureCustomer(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.customer != nil
	c.mu.Unlock()
	if loaded || c.role != models.RoleCustomer {
		return nil
	}
	return c.RefreshCustomer(ctx)
}

// RefreshCustomer refetches the customer record backing the balance display.
func (c *Controller) RefreshCustomer(ctx context.Context) error {
	if c.role != models.RoleCustomer {
		return nil
	}
	res, err := c.customers.Current(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.customer = nil
		return err
	}
	if !res.Ok() {
		c.customer = nil
		c.notifier.Error("Failed to fetch customer: " + res.Message())
		return nil
	}
	current := res.Value()
	c.customer = &current
	return nil
}

// Create submits a one-unit order for the product and, on success, refreshes
// the listing and opens the confirmation prompt for the new order, dropping
// the user straight into the pending-to-confirmed decision.
func (c *Controller) Create(ctx context.Context, productID int64) error {
	res, err := c.svc.Create(ctx, services.OrderRequest{ProductID: productID, Quantity: 1})
	if err != nil {
		return err
	}
	if !res.Ok() {
		c.notifier.Error(res.Message())
		return nil
	}
	return c.afterSubmit(ctx, res)
}

// Edit resubmits the product selection of a pending order, then reopens the
// confirmation flow for the updated order.
func (c *Controller) Edit(ctx context.Context, orderID, productID int64) error {
	order, ok := c.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !order.Status.Allows(models.ActionEdit, c.role) {
		return ErrActionNotAllowed
	}
	res, err := c.svc.Update(ctx, orderID, services.OrderRequest{ProductID: productID, Quantity: 1})
	if err != nil {
		return err
	}
	if !res.Ok() {
		c.notifier.Error(res.Message())
		return nil
	}
	return c.afterSubmit(ctx, res)
}

// afterSubmit is the shared tail of create and edit: notify, refresh, open
// the confirmation prompt for the returned order.
func (c *Controller) afterSubmit(ctx context.Context, res models.Result[services.OrderData]) error {
	c.notifier.Success(res.Message())
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	_, err := c.OpenConfirm(res.Value().Order)
	return err
}

// OpenConfirm gates and opens the confirmation prompt for an order.
func (c *Controller) OpenConfirm(order models.Order) (ConfirmPrompt, error) {
	if !order.Status.Allows(models.ActionConfirm, c.role) {
		return ConfirmPrompt{}, ErrActionNotAllowed
	}
	prompt := ConfirmPrompt{Order: order, RouteLine: order.RouteLine()}
	c.mu.Lock()
	c.prompt = &prompt
	c.mu.Unlock()
	return prompt, nil
}

// OpenConfirmByID opens the confirmation prompt for an order on the current page.
func (c *Controller) OpenConfirmByID(orderID int64) (ConfirmPrompt, error) {
	order, ok := c.OrderByID(orderID)
	if !ok {
		return ConfirmPrompt{}, ErrOrderNotFound
	}
	return c.OpenConfirm(order)
}

// Confirm fires the pending-to-confirmed transition. It requires the summary
// prompt for that order to be open, which is the explicit user
// acknowledgment; the prompt closes once acknowledged. On success the order
// list and the credit balance are each refreshed exactly once.
func (c *Controller) Confirm(ctx context.Context, orderID int64) error {
	c.mu.Lock()
	if c.prompt == nil || c.prompt.Order.ID != orderID {
		c.mu.Unlock()
		return ErrNoPendingPrompt
	}
	c.prompt = nil
	c.mu.Unlock()

	res, err := c.svc.Confirm(ctx, orderID)
	if err != nil {
		return err
	}
	if !res.Ok() {
		c.notifier.Error("Failed to confirm order: " + res.Message())
		return nil
	}
	if err := c.RefreshCustomer(ctx); err != nil {
		return err
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notifySuccess(res.Message(), "Order %d confirmed", orderID)
	return nil
}

// DismissConfirm closes the confirmation prompt without transitioning.
func (c *Controller) DismissConfirm() {
	c.mu.Lock()
	c.prompt = nil
	c.mu.Unlock()
}

// Cancel fires the pending-to-cancelled transition. Irreversible; a default
// reason is recorded when the caller supplies none.
func (c *Controller) Cancel(ctx context.Context, orderID int64, reason string) error {
	order, ok := c.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !order.Status.Allows(models.ActionCancel, c.role) {
		return ErrActionNotAllowed
	}
	if reason == "" {
		reason = DefaultCancellationReason
	}
	res, err := c.svc.Cancel(ctx, orderID, reason)
	if err != nil {
		return err
	}
	if !res.Ok() {
		c.notifier.Error("Failed to cancel order: " + res.Message())
		return nil
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notifySuccess(res.Message(), "Order %d cancelled", orderID)
	return nil
}

// Deliver fires the confirmed-to-delivered transition, admin only.
func (c *Controller) Deliver(ctx context.Context, orderID int64) error {
	order, ok := c.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !order.Status.Allows(models.ActionDeliver, c.role) {
		return ErrActionNotAllowed
	}
	res, err := c.svc.Deliver(ctx, orderID)
	if err != nil {
		return err
	}
	if !res.Ok() {
		c.notifier.Error("Failed to deliver order: " + res.Message())
		return nil
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notifySuccess(res.Message(), "Order %d delivered", orderID)
	return nil
}

// notifySuccess prefers the platform's message, falling back to a format.
func (c *Controller) notifySuccess(message, format string, args ...any) {
	if message == "" {
		message = fmt.Sprintf(format, args...)
	}
	c.notifier.Success(message)
}

// AllowedActions lists the actions this session may trigger on an order,
// which is what the UI uses to show or hide controls.
func (c *Controller) AllowedActions(order models.Order) []models.OrderAction {
	return models.AllowedActions(order.Status, c.role)
}

// OrderByID finds an order on the currently loaded page.
func (c *Controller) OrderByID(orderID int64) (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

// Orders returns a copy of the loaded page.
func (c *Controller) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Total returns the full match count backing pagination.
func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the 1-based current page.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the fixed page length.
func (c *Controller) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// SearchTerm returns the active free-text filter.
func (c *Controller) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// IsLoading reports whether the newest list fetch is still in flight.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Customer returns a copy of the loaded customer record, nil when absent.
func (c *Controller) Customer() *models.Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.customer == nil {
		return nil
	}
	copied := *c.customer
	return &copied
}

// Prompt returns a copy of the open confirmation prompt, nil when closed.
func (c *Controller) Prompt() *ConfirmPrompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prompt == nil {
		return nil
	}
	copied := *c.prompt
	return &copied
}

// Role returns the session role this controller was built for.
func (c *Controller) Role() string {
	return c.role
}
