package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
	assert.False(t, OrderStatusInTransit.Terminal())
}

func TestOrderStatus_Allows(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		action OrderAction
		role   string
		want   bool
	}{
		{"customer confirms pending", OrderStatusPending, ActionConfirm, RoleCustomer, true},
		{"admin cannot confirm", OrderStatusPending, ActionConfirm, RoleAdmin, false},
		{"customer cancels pending", OrderStatusPending, ActionCancel, RoleCustomer, true},
		{"admin cancels pending", OrderStatusPending, ActionCancel, RoleAdmin, true},
		{"customer edits pending", OrderStatusPending, ActionEdit, RoleCustomer, true},
		{"admin cannot edit", OrderStatusPending, ActionEdit, RoleAdmin, false},
		{"admin delivers confirmed", OrderStatusConfirmed, ActionDeliver, RoleAdmin, true},
		{"customer cannot deliver", OrderStatusConfirmed, ActionDeliver, RoleCustomer, false},
		{"no confirm on confirmed", OrderStatusConfirmed, ActionConfirm, RoleCustomer, false},
		{"no cancel on confirmed", OrderStatusConfirmed, ActionCancel, RoleAdmin, false},
		{"no deliver on pending", OrderStatusPending, ActionDeliver, RoleAdmin, false},
		{"in_transit accepts nothing from customer", OrderStatusInTransit, ActionConfirm, RoleCustomer, false},
		{"in_transit accepts nothing from admin", OrderStatusInTransit, ActionDeliver, RoleAdmin, false},
		{"delivered is terminal", OrderStatusDelivered, ActionCancel, RoleAdmin, false},
		{"cancelled is terminal", OrderStatusCancelled, ActionConfirm, RoleCustomer, false},
		{"unknown role", OrderStatusPending, ActionConfirm, "auditor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Allows(tt.action, tt.role))
		})
	}
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []OrderAction{ActionConfirm, ActionEdit, ActionCancel}, AllowedActions(OrderStatusPending, RoleCustomer))
	assert.Equal(t, []OrderAction{ActionCancel}, AllowedActions(OrderStatusPending, RoleAdmin))
	assert.Equal(t, []OrderAction{ActionDeliver}, AllowedActions(OrderStatusConfirmed, RoleAdmin))
	assert.Empty(t, AllowedActions(OrderStatusConfirmed, RoleCustomer))
	assert.Empty(t, AllowedActions(OrderStatusInTransit, RoleAdmin))
	assert.Empty(t, AllowedActions(OrderStatusDelivered, RoleCustomer))
}

func TestOrder_RouteLine(t *testing.T) {
	order := Order{DeliveryRoute: []RouteStop{
		{CenterName: "Central Norte"},
		{CenterName: "Centro Relay"},
		{CenterName: "Punto Sur"},
	}}
	assert.Equal(t, "Central Norte -> Centro Relay -> Punto Sur", order.RouteLine())
	assert.Equal(t, "", Order{}.RouteLine())
}

func TestRouteStop_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stop    RouteStop
		wantErr bool
	}{
		{"valid", RouteStop{Latitude: 14.6349, Longitude: -90.5069}, false},
		{"lat upper bound", RouteStop{Latitude: 90, Longitude: 0}, false},
		{"lng lower bound", RouteStop{Latitude: 0, Longitude: -180}, false},
		{"lat too high", RouteStop{Latitude: 90.01, Longitude: 0}, true},
		{"lat too low", RouteStop{Latitude: -91, Longitude: 0}, true},
		{"lng too high", RouteStop{Latitude: 0, Longitude: 180.5}, true},
		{"lng too low", RouteStop{Latitude: 0, Longitude: -181}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stop.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
