package usecase

import (
	"context"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/metrics"
)

// CategoryResolver maps a free-text (name, type) pair to a stable category
// id, creating the category on first use.
type CategoryResolver struct {
	categoryRepo CategoryRepository
	metrics      *metrics.Metrics
}

// NewCategoryResolver creates a new CategoryResolver.
func NewCategoryResolver(categoryRepo CategoryRepository, m *metrics.Metrics) *CategoryResolver {
	return &CategoryResolver{categoryRepo: categoryRepo, metrics: m}
}

// Resolve returns the id of the category matching (userID, name, type),
// inserting one with the palette color on a miss. The same name under the
// other type is a different category. Lookup and insert are not atomic: two
// concurrent first uses may both insert, which is tolerated.
func (r *CategoryResolver) Resolve(ctx context.Context, userID int64, name string, txType domain.TransactionType) (int64, error) {
	existing, err := r.categoryRepo.FindByKey(ctx, userID, name, txType)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	id, err := r.categoryRepo.Insert(ctx, &domain.Category{
		UserID: userID,
		Name:   name,
		Type:   txType,
		Color:  domain.DefaultColor(txType),
	})
	if err != nil {
		return 0, err
	}

	r.metrics.CategoriesCreated.Inc()

	return id, nil
}
