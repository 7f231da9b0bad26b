package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// ReportUseCase derives read-only summaries from a user's ledger for the
// dashboard and report views.
type ReportUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	now             func() time.Time
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(transactionRepo TransactionRepository, accountRepo AccountRepository) *ReportUseCase {
	return &ReportUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		now:             time.Now,
	}
}

// CategoryShare is a category total enriched with its share of the type's
// grand total and a display color.
type CategoryShare struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	// Percentage is rendered with one fixed decimal ("25.0", "0.0" when the
	// type has no transactions).
	Percentage string `json:"percentage"`
	Color      string `json:"color"`
}

// Summary is the aggregate view of a user's ledger.
type Summary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"`
	IncomeByCategory  []CategoryShare `json:"incomeByCategory"`
	ExpenseByCategory []CategoryShare `json:"expenseByCategory"`
}

// Summarize folds the user's transactions and accounts into totals and
// per-category shares. Category groups keep first-occurrence order.
func (uc *ReportUseCase) Summarize(ctx context.Context, userID int64) (*Summary, error) {
	transactions, err := uc.transactionRepo.ListViews(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	income := domain.TotalIncome(transactions)
	expense := domain.TotalExpense(transactions)

	return &Summary{
		TotalIncome:       income,
		TotalExpense:      expense,
		Balance:           domain.Balance(accounts, transactions),
		IncomeByCategory:  categoryShares(transactions, domain.TypeIncome, income),
		ExpenseByCategory: categoryShares(transactions, domain.TypeExpense, expense),
	}, nil
}

func categoryShares(transactions []*domain.TransactionView, txType domain.TransactionType, total decimal.Decimal) []CategoryShare {
	groups := domain.GroupByCategory(transactions, txType)
	shares := make([]CategoryShare, len(groups))
	for i, g := range groups {
		shares[i] = CategoryShare{
			Name:       g.Name,
			Total:      g.Total,
			Percentage: domain.Percentage(g.Total, total).StringFixed(1),
			Color:      domain.DisplayColor(g.Name, txType),
		}
	}
	return shares
}

// MonthFlow is one month's income and expense totals.
type MonthFlow struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyFlows returns income/expense totals for the last `months` calendar
// months, oldest first, including empty months.
func (uc *ReportUseCase) MonthlyFlows(ctx context.Context, userID int64, months int) ([]MonthFlow, error) {
	if months <= 0 {
		months = 6
	}

	transactions, err := uc.transactionRepo.ListViews(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := domain.MonthlyTotals(transactions)
	now := uc.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	flows := make([]MonthFlow, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		key := fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
		entry := totals[key]
		flows = append(flows, MonthFlow{
			Month:   key,
			Income:  entry.Income,
			Expense: entry.Expense,
		})
	}

	return flows, nil
}

// AccountReport is an account with its derived balance.
type AccountReport struct {
	Account *domain.Account `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountBalances derives the balance of every account the user owns.
func (uc *ReportUseCase) AccountBalances(ctx context.Context, userID int64) ([]AccountReport, error) {
	transactions, err := uc.transactionRepo.ListViews(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances := domain.AccountBalances(accounts, transactions)
	reports := make([]AccountReport, len(balances))
	for i, b := range balances {
		reports[i] = AccountReport{Account: b.Account, Balance: b.Balance}
	}

	return reports, nil
}
