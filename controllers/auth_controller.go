package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/middleware"
	"github.com/dronexpress/console-api/models"
	"github.com/dronexpress/console-api/services"
)

// Role home pages after login.
const (
	adminHome    = "/admin/users"
	customerHome = "/customer/orders"
)

// LoginRequest is the login form. Validation runs before any platform call.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthController handles login, logout and registration.
type AuthController struct {
	auth       *services.AuthService
	newSession middleware.SessionFactory
}

// NewAuthController creates the auth controller.
func NewAuthController(auth *services.AuthService, newSession middleware.SessionFactory) *AuthController {
	return &AuthController{auth: auth, newSession: newSession}
}

// Login handles POST /auth/login: relays credentials to the platform and, on
// success, persists the session pair and reports the role's home path.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := a.auth.Login(c.Request.Context(), services.Credentials{
		Username: req.Email,
		Password: req.Password,
	})
	var redirect *services.AuthRedirectError
	if errors.As(err, &redirect) {
		// Already on the login view; a 401 here means bad credentials, not
		// a stale session, so surface it instead of navigating.
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": res.Message()})
		return
	}
	if handleError(c, err) {
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": res.Message()})
		return
	}

	data := res.Value()
	store := a.newSession(c.Writer, c.Request)
	if err := store.Login(data.UserData, data.AccessToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "detail": "failed to persist session"})
		return
	}

	home := customerHome
	if data.UserData.Role == models.RoleAdmin {
		home = adminHome
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"user_data": data.UserData,
			"home":      home,
		},
		"message": res.Message(),
	})
}

// Logout handles POST /auth/logout: clears the session pair and sends the
// browser back to the entry view.
func (a *AuthController) Logout(c *gin.Context) {
	store := a.newSession(c.Writer, c.Request)
	store.Logout()
	c.Redirect(http.StatusFound, "/")
}

// Register handles POST /auth/register for self-service customer signup.
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := a.auth.Register(c.Request.Context(), req)
	var redirect *services.AuthRedirectError
	if errors.As(err, &redirect) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "detail": res.Message()})
		return
	}
	respondResult(c, res, err)
}
