package domain

import (
	"github.com/shopspring/decimal"
)

// Aggregations over a user's ledger. These are pure folds consumed by the
// dashboard and report views; they never touch the store.

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(transactions []*TransactionView) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == TypeIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpense sums the amounts of all expense transactions.
func TotalExpense(transactions []*TransactionView) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == TypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is the sum of all opening balances plus net transaction flow.
func Balance(accounts []*Account, transactions []*TransactionView) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.OpeningBalance)
	}
	for _, t := range transactions {
		if t.Type == TypeIncome {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// AccountBalance pairs an account with its derived balance.
type AccountBalance struct {
	Account *Account
	Balance decimal.Decimal
}

// AccountBalances derives each account's balance: opening balance plus
// income minus expense on that account.
func AccountBalances(accounts []*Account, transactions []*TransactionView) []AccountBalance {
	balances := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balance := a.OpeningBalance
		for _, t := range transactions {
			if t.AccountID != a.ID {
				continue
			}
			if t.Type == TypeIncome {
				balance = balance.Add(t.Amount)
			} else {
				balance = balance.Sub(t.Amount)
			}
		}
		balances = append(balances, AccountBalance{Account: a, Balance: balance})
	}
	return balances
}

// CategoryTotal is a category name with its summed amount.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// GroupByCategory sums amounts per category name for one transaction type.
// Groups appear in order of first occurrence, not sorted.
func GroupByCategory(transactions []*TransactionView, txType TransactionType) []CategoryTotal {
	index := make(map[string]int)
	var groups []CategoryTotal
	for _, t := range transactions {
		if t.Type != txType {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryTotal{Name: t.Category})
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
	}
	return groups
}

// MonthTotal is the income and expense flow for one YYYY-MM month.
type MonthTotal struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyTotals folds transactions into per-month income/expense sums keyed
// by the YYYY-MM prefix of the transaction date.
func MonthlyTotals(transactions []*TransactionView) map[string]MonthTotal {
	totals := make(map[string]MonthTotal)
	for _, t := range transactions {
		if len(t.Date) < 7 {
			continue
		}
		key := t.Date[:7]
		entry := totals[key]
		if t.Type == TypeIncome {
			entry.Income = entry.Income.Add(t.Amount)
		} else {
			entry.Expense = entry.Expense.Add(t.Amount)
		}
		totals[key] = entry
	}
	return totals
}

// Percentage returns value/total*100 rounded to one decimal place, and zero
// when total is zero.
func Percentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}
