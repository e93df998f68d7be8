package models

import "time"

// Roles known to the console. Every authenticated principal carries exactly one.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents a platform account (admin or customer login).
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// UserProfile is the subset of account data the console persists in the
// session cookie.
type UserProfile struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
