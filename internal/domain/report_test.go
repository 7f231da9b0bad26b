package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLedger() ([]*Account, []*TransactionView) {
	accounts := []*Account{
		{ID: 1, Name: "Checking", OpeningBalance: dec("1000")},
		{ID: 2, Name: "Savings", OpeningBalance: dec("500")},
	}
	transactions := []*TransactionView{
		{ID: 4, Type: TypeExpense, Category: "Rent", Amount: dec("800"), Date: "2025-03-01", AccountID: 1},
		{ID: 3, Type: TypeIncome, Category: "Salary", Amount: dec("2000"), Date: "2025-03-01", AccountID: 1},
		{ID: 2, Type: TypeExpense, Category: "Groceries", Amount: dec("150"), Date: "2025-02-20", AccountID: 2},
		{ID: 1, Type: TypeExpense, Category: "Rent", Amount: dec("900"), Date: "2025-02-01", AccountID: 1},
	}
	return accounts, transactions
}

func TestTotals(t *testing.T) {
	_, transactions := sampleLedger()

	if got := TotalIncome(transactions); !got.Equal(dec("2000")) {
		t.Errorf("expected income 2000, got %s", got)
	}
	if got := TotalExpense(transactions); !got.Equal(dec("1850")) {
		t.Errorf("expected expense 1850, got %s", got)
	}
}

func TestBalance(t *testing.T) {
	accounts, transactions := sampleLedger()

	// 1000 + 500 + 2000 - 800 - 150 - 900
	if got := Balance(accounts, transactions); !got.Equal(dec("1650")) {
		t.Errorf("expected balance 1650, got %s", got)
	}
}

func TestBalanceEmpty(t *testing.T) {
	if got := Balance(nil, nil); !got.Equal(decimal.Zero) {
		t.Errorf("expected zero balance, got %s", got)
	}
}

func TestAccountBalances(t *testing.T) {
	accounts, transactions := sampleLedger()

	balances := AccountBalances(accounts, transactions)
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}

	// Checking: 1000 + 2000 - 800 - 900
	if !balances[0].Balance.Equal(dec("1300")) {
		t.Errorf("expected checking balance 1300, got %s", balances[0].Balance)
	}
	// Savings: 500 - 150
	if !balances[1].Balance.Equal(dec("350")) {
		t.Errorf("expected savings balance 350, got %s", balances[1].Balance)
	}
}

func TestGroupByCategory(t *testing.T) {
	_, transactions := sampleLedger()

	groups := GroupByCategory(transactions, TypeExpense)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// First occurrence order, not sorted.
	if groups[0].Name != "Rent" || !groups[0].Total.Equal(dec("1700")) {
		t.Errorf("expected Rent 1700 first, got %s %s", groups[0].Name, groups[0].Total)
	}
	if groups[1].Name != "Groceries" || !groups[1].Total.Equal(dec("150")) {
		t.Errorf("expected Groceries 150 second, got %s %s", groups[1].Name, groups[1].Total)
	}
}

func TestMonthlyTotals(t *testing.T) {
	_, transactions := sampleLedger()

	totals := MonthlyTotals(transactions)
	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}

	march := totals["2025-03"]
	if !march.Income.Equal(dec("2000")) || !march.Expense.Equal(dec("800")) {
		t.Errorf("expected march 2000/800, got %s/%s", march.Income, march.Expense)
	}

	feb := totals["2025-02"]
	if !feb.Income.Equal(decimal.Zero) || !feb.Expense.Equal(dec("1050")) {
		t.Errorf("expected february 0/1050, got %s/%s", feb.Income, feb.Expense)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		total string
		want  string
	}{
		{"quarter", "25", "100", "25"},
		{"rounded to one decimal", "1", "3", "33.3"},
		{"zero total", "10", "0", "0"},
		{"full", "50", "50", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(dec(tt.value), dec(tt.total))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
