package usecase

import (
	"context"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/metrics"
)

// LedgerUseCase validates and persists transaction mutations. Resolution of
// category and account runs before the write with no surrounding database
// transaction: a failure in between can orphan a freshly created category,
// which is accepted as harmless.
type LedgerUseCase struct {
	transactionRepo TransactionRepository
	accounts        *AccountUseCase
	categories      *CategoryResolver
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	transactionRepo TransactionRepository,
	accounts *AccountUseCase,
	categories *CategoryResolver,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		accounts:        accounts,
		categories:      categories,
		metrics:         m,
	}
}

// MutationResult is the outcome of a successful create or update. View is
// nil when the write landed but the joined projection could not be re-read;
// the caller should treat the entity as mutated but locally unrefreshed.
type MutationResult struct {
	ID   int64
	View *domain.TransactionView
}

// Refreshed reports whether the post-write projection was read back.
func (r MutationResult) Refreshed() bool {
	return r.View != nil
}

// reject counts a failed mutation by error kind and passes the error through.
func (uc *LedgerUseCase) reject(err error) (MutationResult, error) {
	uc.metrics.TransactionErrors.WithLabelValues(domain.Kind(err).String()).Inc()
	return MutationResult{}, err
}

// Create validates a draft, resolves its category and account, and persists
// a new transaction for the user.
func (uc *LedgerUseCase) Create(ctx context.Context, userID int64, draft domain.TransactionDraft) (MutationResult, error) {
	normalized, err := draft.Normalize()
	if err != nil {
		return uc.reject(err)
	}

	categoryID, err := uc.categories.Resolve(ctx, userID, normalized.Category, normalized.Type)
	if err != nil {
		return uc.reject(err)
	}

	accountID, err := uc.accounts.ResolveAccountID(ctx, ResolveAccountInput{
		UserID:       userID,
		Submitted:    normalized.AccountID,
		UsePreferred: true,
	})
	if err != nil {
		return uc.reject(err)
	}

	id, err := uc.transactionRepo.Insert(ctx, &domain.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        normalized.Type,
		Amount:      normalized.Amount,
		Description: normalized.Description,
		Date:        normalized.Date,
	})
	if err != nil {
		uc.metrics.DBErrors.WithLabelValues("insert").Inc()
		return uc.reject(err)
	}

	uc.metrics.TransactionsCreated.Inc()

	return uc.reread(ctx, userID, id)
}

// Update revalidates the draft and rewrites the row matching (id, userID).
// The conditional update's affected-row count is the sole existence check;
// there is no separate probe that could race with the write.
func (uc *LedgerUseCase) Update(ctx context.Context, userID, id int64, draft domain.TransactionDraft) (MutationResult, error) {
	normalized, err := draft.Normalize()
	if err != nil {
		return uc.reject(err)
	}

	categoryID, err := uc.categories.Resolve(ctx, userID, normalized.Category, normalized.Type)
	if err != nil {
		return uc.reject(err)
	}

	// Updates never fall back to the configured default account.
	accountID, err := uc.accounts.ResolveAccountID(ctx, ResolveAccountInput{
		UserID:    userID,
		Submitted: normalized.AccountID,
	})
	if err != nil {
		return uc.reject(err)
	}

	affected, err := uc.transactionRepo.Update(ctx, &domain.Transaction{
		ID:          id,
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        normalized.Type,
		Amount:      normalized.Amount,
		Description: normalized.Description,
		Date:        normalized.Date,
	})
	if err != nil {
		uc.metrics.DBErrors.WithLabelValues("update").Inc()
		return uc.reject(err)
	}
	if affected == 0 {
		return uc.reject(domain.ErrTransactionNotFound)
	}

	uc.metrics.TransactionsUpdated.Inc()

	return uc.reread(ctx, userID, id)
}

// Delete removes the transaction matching (id, userID) and returns the
// deleted id.
func (uc *LedgerUseCase) Delete(ctx context.Context, userID, id int64) (int64, error) {
	affected, err := uc.transactionRepo.Delete(ctx, userID, id)
	if err != nil {
		uc.metrics.DBErrors.WithLabelValues("delete").Inc()
		return 0, err
	}
	if affected == 0 {
		uc.metrics.TransactionErrors.WithLabelValues(domain.KindNotFound.String()).Inc()
		return 0, domain.ErrTransactionNotFound
	}

	uc.metrics.TransactionsDeleted.Inc()

	return id, nil
}

// List returns the user's ledger, newest first.
func (uc *LedgerUseCase) List(ctx context.Context, userID int64) ([]*domain.TransactionView, error) {
	return uc.transactionRepo.ListViews(ctx, userID)
}

// reread fetches the joined projection after a successful write. A re-read
// failure degrades the result instead of failing the mutation.
func (uc *LedgerUseCase) reread(ctx context.Context, userID, id int64) (MutationResult, error) {
	view, err := uc.transactionRepo.GetView(ctx, userID, id)
	if err != nil {
		return MutationResult{ID: id}, nil
	}
	return MutationResult{ID: id, View: view}, nil
}
