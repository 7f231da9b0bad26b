package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a funding source owned by exactly one user. Accounts are
// provisioned out-of-band; this service only reads and references them.
type Account struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"-"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Institution    string          `json:"institution,omitempty"`
	AccountNumber  string          `json:"accountNumber,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}
