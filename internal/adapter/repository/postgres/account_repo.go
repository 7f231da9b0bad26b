package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

const accountSelect = `
	SELECT id, user_id, name, type, institution, account_number, opening_balance
	FROM accounts
`

// AccountRepository implements usecase.AccountRepository. Accounts are
// provisioned out-of-band, so only reads live here. An account that does not
// exist and an account owned by someone else are indistinguishable: both
// surface as domain.ErrInvalidAccount.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetOwned retrieves an account if it belongs to the user.
func (r *AccountRepository) GetOwned(ctx context.Context, userID, id int64) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, accountSelect+` WHERE id = $1 AND user_id = $2 LIMIT 1`, id, userID)
	return scanAccount(row)
}

// FirstOwned retrieves the user's account with the smallest id, the final
// fallback of account resolution.
func (r *AccountRepository) FirstOwned(ctx context.Context, userID int64) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, accountSelect+` WHERE user_id = $1 ORDER BY id ASC LIMIT 1`, userID)
	return scanAccount(row)
}

// ListByUser retrieves the user's accounts ordered by name.
func (r *AccountRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, accountSelect+` WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account        domain.Account
		institution    *string
		accountNumber  *string
		openingBalance pgtype.Numeric
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&institution,
		&accountNumber,
		&openingBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidAccount
		}
		return nil, err
	}

	if institution != nil {
		account.Institution = *institution
	}
	if accountNumber != nil {
		account.AccountNumber = *accountNumber
	}
	account.OpeningBalance = numericToDecimal(openingBalance)

	return &account, nil
}
