package models

import "time"

// CreditTransaction is one movement on a customer's credit balance, either a
// top-up recorded by an admin or a debit the platform applied on order
// confirmation.
type CreditTransaction struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"transaction_type,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// CreditTransactionPage is one page of the transaction listing.
type CreditTransactionPage struct {
	Transactions []CreditTransaction `json:"transactions"`
	Total        int                 `json:"total"`
}
