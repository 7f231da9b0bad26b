package usecase

import (
	"context"
	"errors"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// AccountUseCase handles account reads and account resolution for
// transaction writes. The default account id is a process-wide configured
// value injected once at construction, never read ad hoc.
type AccountUseCase struct {
	accountRepo      AccountRepository
	defaultAccountID int64
}

// NewAccountUseCase creates a new AccountUseCase. defaultAccountID may be 0
// when no default is configured.
func NewAccountUseCase(accountRepo AccountRepository, defaultAccountID int64) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:      accountRepo,
		defaultAccountID: defaultAccountID,
	}
}

// ResolveAccountInput carries the candidates for account resolution.
// Submitted comes from the request; Preferred is the configured default and
// only consulted when UsePreferred is set.
type ResolveAccountInput struct {
	UserID       int64
	Submitted    int64
	UsePreferred bool
}

// ResolveAccountID picks the account a transaction lands on, in precedence
// order: a submitted id must belong to the user or the request fails; the
// configured default is used when valid and silently skipped when not; the
// final fallback is the user's account with the smallest id. A user with no
// accounts at all cannot record transactions.
func (uc *AccountUseCase) ResolveAccountID(ctx context.Context, input ResolveAccountInput) (int64, error) {
	if input.Submitted > 0 {
		account, err := uc.accountRepo.GetOwned(ctx, input.UserID, input.Submitted)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidAccount) {
				return 0, domain.ErrInvalidAccount
			}
			return 0, err
		}
		return account.ID, nil
	}

	if input.UsePreferred && uc.defaultAccountID > 0 {
		account, err := uc.accountRepo.GetOwned(ctx, input.UserID, uc.defaultAccountID)
		if err == nil {
			return account.ID, nil
		}
		if !errors.Is(err, domain.ErrInvalidAccount) {
			return 0, err
		}
		// Misconfigured default falls through to the smallest-id fallback.
	}

	account, err := uc.accountRepo.FirstOwned(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAccount) {
			return 0, domain.ErrNoAccounts
		}
		return 0, err
	}

	return account.ID, nil
}

// ListAccounts returns the user's accounts ordered by name.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, userID int64) ([]*domain.Account, error) {
	return uc.accountRepo.ListByUser(ctx, userID)
}
