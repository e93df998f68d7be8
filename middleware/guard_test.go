package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronexpress/console-api/models"
	"github.com/dronexpress/console-api/services"
	"github.com/dronexpress/console-api/session"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	newSession := func(w http.ResponseWriter, r *http.Request) *session.Store {
		return session.NewStore(session.NewCookieStorage(w, r, session.DefaultOptions()))
	}
	router := gin.New()
	protected := router.Group("/", RequireSession(newSession))
	probe := func(c *gin.Context) {
		store := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"role":  store.Role(),
			"token": services.AccessTokenFrom(c.Request.Context()),
		})
	}
	protected.GET("/customer/orders", probe)
	protected.GET("/admin/users", probe)
	protected.GET("/shared", probe)
	return router
}

func sessionRequest(t *testing.T, path, token, role string) *http.Request {
	t.Helper()
	profile, err := json.Marshal(models.UserProfile{ID: 7, FullName: "Maria Lopez", Role: role})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: session.CookieAccessToken, Value: url.QueryEscape(token)})
	req.AddCookie(&http.Cookie{Name: session.CookieUserProfile, Value: url.QueryEscape(string(profile))})
	return req
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func liveJWT(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestRequireSession_NoSessionRedirectsToLogin(t *testing.T) {
	router := guardedRouter()
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customer/orders", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, services.LoginPath, rec.Header().Get("Location"))
}

func TestRequireSession_ValidSessionPassesThrough(t *testing.T) {
	router := guardedRouter()
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, sessionRequest(t, "/customer/orders", "opaque-token", models.RoleCustomer))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.RoleCustomer, body["role"])
	assert.Equal(t, "opaque-token", body["token"], "the bearer token must reach the request context")
}

func TestRequireSession_LiveJWTAccepted(t *testing.T) {
	router := guardedRouter()
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, sessionRequest(t, "/customer/orders", liveJWT(t), models.RoleCustomer))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSession_ExpiredTokenClearsSession(t *testing.T) {
	router := guardedRouter()
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, sessionRequest(t, "/customer/orders", expiredJWT(t), models.RoleCustomer))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, services.LoginPath, rec.Header().Get("Location"))

	cleared := map[string]bool{}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			cleared[cookie.Name] = true
		}
	}
	assert.True(t, cleared[session.CookieAccessToken], "expired session must drop the token cookie")
	assert.True(t, cleared[session.CookieUserProfile], "expired session must drop the profile cookie")
}

func TestRequireSession_RoleMismatchRedirectsToForbidden(t *testing.T) {
	router := guardedRouter()

	tests := []struct {
		name string
		path string
		role string
		want int
	}{
		{"customer blocked from admin", "/admin/users", models.RoleCustomer, http.StatusFound},
		{"admin blocked from customer", "/customer/orders", models.RoleAdmin, http.StatusFound},
		{"admin allowed on admin", "/admin/users", models.RoleAdmin, http.StatusOK},
		{"shared path open to both", "/shared", models.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, sessionRequest(t, tt.path, "opaque-token", tt.role))
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusFound {
				assert.Equal(t, services.ForbiddenPath, rec.Header().Get("Location"))
			}
		})
	}
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name string
		role string
		path string
		want bool
	}{
		{"admin on admin pages", models.RoleAdmin, "/admin/orders", true},
		{"customer on customer pages", models.RoleCustomer, "/customer/orders", true},
		{"customer on admin pages", models.RoleCustomer, "/admin/orders", false},
		{"admin on customer pages", models.RoleAdmin, "/customer/orders", false},
		{"any role outside prefixes", models.RoleCustomer, "/login/", true},
		{"root path open", models.RoleAdmin, "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.role, tt.path))
		})
	}
}

func TestTokenExpired(t *testing.T) {
	assert.True(t, tokenExpired(expiredJWT(t)))
	assert.False(t, tokenExpired(liveJWT(t)))
	assert.False(t, tokenExpired("opaque-token"), "non-JWT tokens are left for the platform to judge")
	assert.False(t, tokenExpired(""))
}
