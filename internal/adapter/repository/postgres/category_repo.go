package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository.
//
// There is deliberately no unique constraint on (user_id, name, type).
// Concurrent submissions of the same category name may create duplicates;
// lookups take the first match, so duplicates are harmless.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// FindByKey looks up a category by its logical key. A miss returns (nil, nil).
func (r *CategoryRepository) FindByKey(ctx context.Context, userID int64, name string, txType domain.TransactionType) (*domain.Category, error) {
	var category domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, type, color
		FROM categories
		WHERE user_id = $1 AND name = $2 AND type = $3
		LIMIT 1
	`, userID, name, string(txType)).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Type,
		&category.Color,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

// Insert stores a new category and returns its id.
func (r *CategoryRepository) Insert(ctx context.Context, category *domain.Category) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (user_id, name, type, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, category.UserID, category.Name, string(category.Type), category.Color).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
