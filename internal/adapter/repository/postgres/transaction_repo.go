package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// transactionSelect is the joined projection every transaction read goes
// through. LEFT JOINs keep rows readable even if a referenced category or
// account vanished; the mapper substitutes placeholders.
const transactionSelect = `
	SELECT
		t.id,
		t.type,
		c.name AS category,
		t.amount,
		t.description,
		to_char(t.transaction_date, 'YYYY-MM-DD') AS date,
		t.account_id,
		a.name AS account_name
	FROM transactions t
	LEFT JOIN categories c ON t.category_id = c.id
	LEFT JOIN accounts a ON t.account_id = a.id
`

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Insert creates a transaction row and returns its id.
func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (user_id, account_id, category_id, type, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		tx.UserID,
		tx.AccountID,
		tx.CategoryID,
		string(tx.Type),
		decimalToNumeric(tx.Amount),
		tx.Description,
		tx.Date,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the row matching (id, user_id). The returned count is the
// caller's only existence check; there is deliberately no prior probe.
func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) (int64, error) {
	query := `
		UPDATE transactions
		SET type = $3, category_id = $4, amount = $5, description = $6, transaction_date = $7::date, account_id = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.UserID,
		string(tx.Type),
		tx.CategoryID,
		decimalToNumeric(tx.Amount),
		tx.Description,
		tx.Date,
		tx.AccountID,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// Delete removes the row matching (id, user_id) and reports the count.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// GetView retrieves the joined projection of one transaction under the
// ownership filter.
func (r *TransactionRepository) GetView(ctx context.Context, userID, id int64) (*domain.TransactionView, error) {
	row := r.pool.QueryRow(ctx, transactionSelect+` WHERE t.id = $1 AND t.user_id = $2 LIMIT 1`, id, userID)

	view, err := scanView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return view, nil
}

// ListViews returns the user's ledger ordered by date descending, then id
// descending so same-date entries come back newest-inserted first.
func (r *TransactionRepository) ListViews(ctx context.Context, userID int64) ([]*domain.TransactionView, error) {
	rows, err := r.pool.Query(ctx, transactionSelect+` WHERE t.user_id = $1 ORDER BY t.transaction_date DESC, t.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]*domain.TransactionView, 0)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

func scanView(row pgx.Row) (*domain.TransactionView, error) {
	var (
		view        domain.TransactionView
		txType      string
		category    *string
		amount      pgtype.Numeric
		description *string
		accountName *string
	)

	err := row.Scan(
		&view.ID,
		&txType,
		&category,
		&amount,
		&description,
		&view.Date,
		&view.AccountID,
		&accountName,
	)
	if err != nil {
		return nil, err
	}

	view.Type = domain.TransactionType(txType)
	view.Amount = numericToDecimal(amount)

	// Placeholders mirror what the web client expects for broken joins.
	view.Category = "-"
	if category != nil {
		view.Category = *category
	}
	if description != nil {
		view.Description = *description
	}
	view.AccountName = "-"
	if accountName != nil {
		view.AccountName = *accountName
	}

	return &view, nil
}
