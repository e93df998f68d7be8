package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of an order as reported by the platform API.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the order can never leave this state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderAction is an operation a console user can trigger on an order.
type OrderAction string

const (
	ActionConfirm OrderAction = "confirm"
	ActionCancel  OrderAction = "cancel"
	ActionDeliver OrderAction = "deliver"
	ActionEdit    OrderAction = "edit"
)

// actionGates maps each console-triggered action to the status it requires
// and the roles allowed to trigger it. in_transit has no entry on purpose:
// the platform moves orders into and out of it without console involvement.
var actionGates = map[OrderAction]struct {
	from  OrderStatus
	roles []string
}{
	ActionConfirm: {OrderStatusPending, []string{RoleCustomer}},
	ActionCancel:  {OrderStatusPending, []string{RoleCustomer, RoleAdmin}},
	ActionDeliver: {OrderStatusConfirmed, []string{RoleAdmin}},
	ActionEdit:    {OrderStatusPending, []string{RoleCustomer}},
}

// actionOrder fixes the order AllowedActions reports actions in.
var actionOrder = []OrderAction{ActionConfirm, ActionEdit, ActionCancel, ActionDeliver}

// Allows reports whether a user with the given role may trigger action on an
// order currently in status s.
func (s OrderStatus) Allows(action OrderAction, role string) bool {
	gate, ok := actionGates[action]
	if !ok || gate.from != s {
		return false
	}
	for _, r := range gate.roles {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedActions lists every action a role may trigger on an order in status s.
func AllowedActions(s OrderStatus, role string) []OrderAction {
	var actions []OrderAction
	for _, a := range actionOrder {
		if s.Allows(a, role) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Order represents one purchase-and-delivery request. Route, center
// assignment and every cost field are computed by the platform on creation;
// the console only reads them.
type Order struct {
	ID                    int64       `json:"id"`
	CustomerID            int64       `json:"customer_id,omitempty"`
	CustomerName          string      `json:"customer_name,omitempty"`
	ProductID             int64       `json:"product_id"`
	ProductName           string      `json:"product_name,omitempty"`
	Quantity              int         `json:"quantity"`
	Status                OrderStatus `json:"status_name"`
	AssignedCenterID      int64       `json:"assigned_distribution_center_id,omitempty"`
	AssignedCenterName    string      `json:"assigned_distribution_center_name,omitempty"`
	DeliveryRoute         []RouteStop `json:"delivery_route,omitempty"`
	TotalDistance         float64     `json:"total_distance"`
	EstimatedDeliveryTime float64     `json:"estimated_delivery_time"`
	ProductCost           float64     `json:"product_cost"`
	ServiceCost           float64     `json:"service_cost"`
	TotalCost             float64     `json:"total_cost"`
	CancellationReason    string      `json:"cancellation_reason,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at,omitempty"`
}

// RouteLine renders the delivery route as "A -> B -> C" for the
// confirmation summary.
func (o Order) RouteLine() string {
	names := make([]string, len(o.DeliveryRoute))
	for i, stop := range o.DeliveryRoute {
		names[i] = stop.CenterName
	}
	return strings.Join(names, " -> ")
}

// RouteStop is one waypoint in a delivery route. The first stop is the
// origin center, the last is the customer-adjacent destination point.
type RouteStop struct {
	CenterID   int64   `json:"center_id"`
	CenterName string  `json:"center_name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Validate checks the stop's coordinates are on the globe.
func (s RouteStop) Validate() error {
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", s.Longitude)
	}
	return nil
}

// OrderPage is one page of the order listing.
type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}
