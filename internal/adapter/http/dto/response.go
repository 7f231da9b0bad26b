package dto

import (
	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MutationResponse represents the result of a create or update. Transaction
// is null when the row could not be read back after the write; the id is
// always present.
type MutationResponse struct {
	ID          int64                   `json:"id"`
	Transaction *domain.TransactionView `json:"transaction"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	ID int64 `json:"id"`
}

// ListTransactionsResponse represents a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*domain.TransactionView `json:"transactions"`
	Total        int64                     `json:"total"`
}

// ListAccountsResponse represents an account listing.
type ListAccountsResponse struct {
	Accounts []*domain.Account `json:"accounts"`
	Total    int64             `json:"total"`
}

// UserResponse represents user information.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse represents a login response. The token also travels in the
// session cookie; it is echoed here for non-browser clients.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
