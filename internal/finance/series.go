package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/models"
)

type MonthTotals struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeries buckets income and expense per calendar month for the
// months ending with now's month, oldest first. Transactions outside the
// window or without a timestamp are ignored.
func MonthlySeries(txs []models.Transaction, now time.Time, months int) []MonthTotals {
	if months <= 0 {
		return []MonthTotals{}
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	out := make([]MonthTotals, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i] = MonthTotals{Year: m.Year(), Month: int(m.Month()), Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, t := range txs {
		if t.CreatedAt.IsZero() {
			continue
		}
		at := t.CreatedAt.In(now.Location())
		idx := (at.Year()-first.Year())*12 + int(at.Month()) - int(first.Month())
		if idx < 0 || idx >= months {
			continue
		}
		switch t.Type {
		case models.Income:
			out[idx].Income = out[idx].Income.Add(t.Amount)
		case models.Expense:
			out[idx].Expense = out[idx].Expense.Add(t.Amount)
		}
	}
	return out
}
