package models

import "time"

// Customer is a buying account with a prepaid credit balance. The balance is
// debited by the platform when an order is confirmed; the console only
// displays it.
type Customer struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id,omitempty"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreditBalance float64   `json:"credit_balance"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// CustomerPage is one page of the customer listing.
type CustomerPage struct {
	Customers []Customer `json:"customers"`
	Total     int        `json:"total"`
}
