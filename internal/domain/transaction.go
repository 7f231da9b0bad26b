package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether the type is one of the two accepted values.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single ledger row as stored.
type Transaction struct {
	ID          int64
	UserID      int64
	AccountID   int64
	CategoryID  int64
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        string // YYYY-MM-DD
}

// TransactionView is the joined projection returned to callers: the row plus
// the names of the category and account it references. Missing joins render
// as "-" so a deleted category never breaks a listing.
type TransactionView struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	AccountID   int64           `json:"accountId"`
	AccountName string          `json:"accountName"`
}
