// Package middleware holds the access guard: the synchronous, cookie-only
// check that gates every protected route on session presence and role.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dronexpress/console-api/services"
	"github.com/dronexpress/console-api/session"
)

const sessionContextKey = "console_session_store"

// SessionFactory builds the session store bound to one request's cookies.
// main wires cookie options (secure flag) into it.
type SessionFactory func(w http.ResponseWriter, r *http.Request) *session.Store

// RequireSession gates a route group on an authenticated session. No network
// call is made: presence and expiry are judged from the cookie pair alone.
// Missing or expired sessions redirect to the login view; a role browsing a
// path prefix it does not own redirects to the forbidden view. On success
// the store and its bearer token are scoped to the request context.
func RequireSession(newSession SessionFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := newSession(c.Writer, c.Request)
		if !store.IsAuthenticated() {
			c.Redirect(http.StatusFound, services.LoginPath)
			c.Abort()
			return
		}
		if tokenExpired(store.Token()) {
			store.Logout()
			c.Redirect(http.StatusFound, services.LoginPath)
			c.Abort()
			return
		}
		if !CanAccess(store.Role(), c.Request.URL.Path) {
			c.Redirect(http.StatusFound, services.ForbiddenPath)
			c.Abort()
			return
		}
		c.Set(sessionContextKey, store)
		c.Request = c.Request.WithContext(services.WithAccessToken(c.Request.Context(), store.Token()))
		c.Next()
	}
}

// SessionFrom returns the session store the guard attached to this request.
func SessionFrom(c *gin.Context) *session.Store {
	store, _ := c.MustGet(sessionContextKey).(*session.Store)
	return store
}

// tokenExpired inspects the bearer token's exp claim without verifying the
// signature; the platform owns the signing key. Tokens that don't parse as
// JWTs are treated as opaque and left for the platform to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
