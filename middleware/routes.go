package middleware

import (
	"strings"

	"github.com/dronexpress/console-api/models"
)

// RoutePolicy maps a protected path prefix to the role allowed under it.
type RoutePolicy struct {
	Prefix string
	Role   string
}

// RoutePolicies is the static role-to-path table. It is consulted once per
// request at the router boundary rather than inside individual pages.
var RoutePolicies = []RoutePolicy{
	{Prefix: "/admin/", Role: models.RoleAdmin},
	{Prefix: "/customer/", Role: models.RoleCustomer},
}

// CanAccess reports whether a role may navigate to path. Paths outside every
// policy prefix are open to any authenticated session.
func CanAccess(role, path string) bool {
	for _, policy := range RoutePolicies {
		if strings.HasPrefix(path, policy.Prefix) {
			return role == policy.Role
		}
	}
	return true
}
