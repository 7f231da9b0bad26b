package domain

import "fmt"

// Category groups transactions under a per-user (name, type) natural key.
// Uniqueness is enforced by lookup-before-insert, not a database constraint;
// two concurrent first uses of a key may both insert. The duplicates are
// harmless and tolerated.
type Category struct {
	ID     int64
	UserID int64
	Name   string
	Type   TransactionType
	Color  string
}

// Stored palette colors assigned at creation.
const (
	IncomeColor  = "#16a34a"
	ExpenseColor = "#dc2626"
)

// DefaultColor returns the stored palette color for a category type.
func DefaultColor(t TransactionType) string {
	if t == TypeIncome {
		return IncomeColor
	}
	return ExpenseColor
}

// DisplayColor derives a stable presentation color from a category name.
// It is computed on the fly for charts and never persisted; expenses get a
// 140 degree hue shift so the two palettes stay visually distinct.
func DisplayColor(name string, t TransactionType) string {
	var hash int32
	for _, c := range name {
		hash = int32(c) + ((hash << 5) - hash)
	}

	abs := hash
	if abs < 0 {
		abs = -abs
	}

	baseHue := abs % 360
	if t == TypeExpense {
		baseHue = (baseHue + 140) % 360
	}

	shifted3 := hash >> 3
	if shifted3 < 0 {
		shifted3 = -shifted3
	}
	shifted5 := hash >> 5
	if shifted5 < 0 {
		shifted5 = -shifted5
	}

	saturation := 55 + shifted3%25
	lightness := 45 + shifted5%12

	return fmt.Sprintf("hsl(%ddeg %d%% %d%%)", baseHue, saturation, lightness)
}
