package services

import (
	"context"
	"net/http"

	"github.com/dronexpress/console-api/models"
)

// Credentials is the login payload. The platform expects the email in the
// username field.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginData is the successful login payload: the bearer credential plus the
// profile the console persists in cookies.
type LoginData struct {
	AccessToken string             `json:"access_token"`
	UserData    models.UserProfile `json:"user_data"`
}

// RegisterPayload is the self-service customer signup form.
type RegisterPayload struct {
	FullName  string  `json:"full_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

// AuthService maps authentication calls onto platform endpoints. Token
// issuance and password handling live entirely on the platform; the console
// only relays credentials and stores what comes back.
type AuthService struct {
	gw *Gateway
}

// NewAuthService creates an auth service over the shared gateway.
func NewAuthService(gw *Gateway) *AuthService {
	return &AuthService{gw: gw}
}

// Login exchanges credentials for a bearer token and profile.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (models.Result[LoginData], error) {
	return Decode[LoginData](s.gw.Do(ctx, http.MethodPost, "auth/login", nil, creds))
}

// Register creates a new customer account.
func (s *AuthService) Register(ctx context.Context, payload RegisterPayload) (models.Result[LoginData], error) {
	return Decode[LoginData](s.gw.Do(ctx, http.MethodPost, "auth/register", nil, payload))
}
