package controllers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dronexpress/console-api/workflow"
)

// sessionCookie identifies one browser session so its workflow state (page,
// search, open prompt) survives between requests. It is a plain session
// cookie, separate from the credential pair.
const sessionCookie = "console_session"

// sessionEntry pairs a workflow controller with the notification queue its
// responses drain.
type sessionEntry struct {
	ctl   *workflow.Controller
	notes *workflow.Queue
}

// Registry hands out one workflow controller per console session and role.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	orders    workflow.OrdersAPI
	customers workflow.CustomersAPI
}

// NewRegistry creates a registry building controllers over the given services.
func NewRegistry(orders workflow.OrdersAPI, customers workflow.CustomersAPI) *Registry {
	return &Registry{
		sessions:  make(map[string]*sessionEntry),
		orders:    orders,
		customers: customers,
	}
}

// Session returns the workflow controller for this request's console
// session, creating it (and the session cookie) on first sight. Keying by
// role as well means a re-login under a different role gets fresh state.
func (r *Registry) Session(c *gin.Context, role string) (*workflow.Controller, *workflow.Queue) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}
	key := id + ":" + role

	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[key]
	if !ok {
		notes := workflow.NewQueue()
		entry = &sessionEntry{
			ctl:   workflow.New(r.orders, r.customers, role, notes),
			notes: notes,
		}
		r.sessions[key] = entry
	}
	return entry.ctl, entry.notes
}
