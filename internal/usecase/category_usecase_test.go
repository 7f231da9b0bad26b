package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase/mocks"
)

func TestCategoryResolverCreatesWithPaletteColor(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	var inserted *domain.Category
	repo.InsertFunc = func(ctx context.Context, category *domain.Category) (int64, error) {
		inserted = category
		return 7, nil
	}

	resolver := usecase.NewCategoryResolver(repo, testMetrics)
	id, err := resolver.Resolve(context.Background(), 1, "Groceries", domain.TypeExpense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
	if inserted == nil || inserted.Color != domain.ExpenseColor {
		t.Errorf("expected expense palette color, got %+v", inserted)
	}
}

func TestCategoryResolverReturnsExisting(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	resolver := usecase.NewCategoryResolver(repo, testMetrics)

	first, err := resolver.Resolve(context.Background(), 1, "Salary", domain.TypeIncome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := resolver.Resolve(context.Background(), 1, "Salary", domain.TypeIncome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected the same id, got %d and %d", first, second)
	}
	if repo.Count() != 1 {
		t.Errorf("expected a single category, got %d", repo.Count())
	}
}

func TestCategoryResolverScopesByUser(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	resolver := usecase.NewCategoryResolver(repo, testMetrics)

	a, err := resolver.Resolve(context.Background(), 1, "Rent", domain.TypeExpense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := resolver.Resolve(context.Background(), 2, "Rent", domain.TypeExpense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Errorf("expected per-user categories, both got id %d", a)
	}
}

func TestCategoryResolverLookupFailure(t *testing.T) {
	repo := mocks.NewMockCategoryRepository()
	storeErr := errors.New("connection reset")
	repo.FindByKeyFunc = func(ctx context.Context, userID int64, name string, txType domain.TransactionType) (*domain.Category, error) {
		return nil, storeErr
	}

	resolver := usecase.NewCategoryResolver(repo, testMetrics)
	_, err := resolver.Resolve(context.Background(), 1, "Rent", domain.TypeExpense)
	if !errors.Is(err, storeErr) {
		t.Errorf("expected the store error to surface, got %v", err)
	}
}
