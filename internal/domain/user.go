package domain

// User is the authenticated owner of accounts, categories and transactions.
// Authentication itself is handled by the session provider; the ledger core
// only ever sees the id and scopes every query by it.
type User struct {
	ID             int64
	Email          string
	Name           string
	HashedPassword string
}
