package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionDraft is the raw caller input for a create or update. Fields
// arrive as strings straight off the wire; Normalize parses and validates
// them in a fixed order, failing fast on the first problem.
type TransactionDraft struct {
	Type        string
	Category    string
	Amount      string
	Description string
	Date        string
	AccountID   string
}

// NormalizedDraft is a draft that passed validation. AccountID is the
// submitted account id, or 0 when the caller left the field to fallback
// resolution.
type NormalizedDraft struct {
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        string
	AccountID   int64
}

// Normalize validates a draft. The check order is part of the contract:
// type, category, amount, date, account presence, account id format. Each
// failure is terminal and reported to the caller, never retried.
func (d TransactionDraft) Normalize() (NormalizedDraft, error) {
	txType := TransactionType(d.Type)
	if !txType.IsValid() {
		return NormalizedDraft{}, ErrInvalidType
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		return NormalizedDraft{}, ErrMissingCategory
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return NormalizedDraft{}, ErrInvalidAmount
	}

	if strings.TrimSpace(d.Date) == "" {
		return NormalizedDraft{}, ErrMissingDate
	}

	rawAccount := strings.TrimSpace(d.AccountID)
	if rawAccount == "" {
		return NormalizedDraft{}, ErrMissingAccount
	}

	accountID, err := strconv.ParseInt(rawAccount, 10, 64)
	if err != nil || accountID <= 0 {
		return NormalizedDraft{}, ErrInvalidAccount
	}

	return NormalizedDraft{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: d.Description,
		Date:        strings.TrimSpace(d.Date),
		AccountID:   accountID,
	}, nil
}
