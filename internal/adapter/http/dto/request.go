package dto

import (
	"encoding/json"
	"strings"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// FlexString accepts a JSON string or number and keeps its textual form.
// Browser clients send amounts and account ids both ways.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		*s = ""
		return nil
	}
	if trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())

	return nil
}

// TransactionRequest represents a request to record or amend a transaction.
type TransactionRequest struct {
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Amount      FlexString `json:"amount"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	AccountID   FlexString `json:"accountId"`
}

// ToDraft converts to a domain draft. Validation happens downstream.
func (r *TransactionRequest) ToDraft() domain.TransactionDraft {
	return domain.TransactionDraft{
		Type:        r.Type,
		Category:    r.Category,
		Amount:      string(r.Amount),
		Description: r.Description,
		Date:        r.Date,
		AccountID:   string(r.AccountID),
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
