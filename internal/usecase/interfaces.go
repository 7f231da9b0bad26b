package usecase

import (
	"context"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// TransactionRepository defines data access for transactions. Every method
// is scoped by user id so a caller can never reach another tenant's rows.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *domain.Transaction) (int64, error)
	// Update rewrites the row matching (id, userID) and reports how many
	// rows were affected. The count is the sole existence check.
	Update(ctx context.Context, tx *domain.Transaction) (int64, error)
	// Delete removes the row matching (id, userID) and reports the count.
	Delete(ctx context.Context, userID, id int64) (int64, error)
	GetView(ctx context.Context, userID, id int64) (*domain.TransactionView, error)
	// ListViews returns the user's ledger ordered by date descending, then
	// id descending.
	ListViews(ctx context.Context, userID int64) ([]*domain.TransactionView, error)
}

// AccountRepository defines data access for accounts. Accounts are created
// out-of-band; only reads exist here.
type AccountRepository interface {
	// GetOwned returns the account only if it belongs to userID.
	GetOwned(ctx context.Context, userID, id int64) (*domain.Account, error)
	// FirstOwned returns the user's account with the smallest id.
	FirstOwned(ctx context.Context, userID int64) (*domain.Account, error)
	// ListByUser returns the user's accounts ordered by name ascending.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error)
}

// CategoryRepository defines data access for categories. Lookup and insert
// are deliberately separate calls: the get-or-create race on the natural key
// is tolerated, not locked away.
type CategoryRepository interface {
	FindByKey(ctx context.Context, userID int64, name string, txType domain.TransactionType) (*domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) (int64, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
