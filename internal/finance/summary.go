// Package finance turns transaction records into the dashboard's aggregates.
// Every function here is a pure, single pass over its input.
package finance

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/models"
)

// OtherCategory collects expenses recorded without a category.
const OtherCategory = "Other"

type Summary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	NetBalance        decimal.Decimal `json:"net_balance"`
	ExpenseByCategory CategoryTotals  `json:"expense_by_category"`

	Count          int `json:"count"`
	InvalidAmounts int `json:"invalid_amounts"` // counted, contributed zero
	Unrecognized   int `json:"unrecognized"`    // type neither income nor expense
}

// Summarize computes totals over txs. Unrecognized types are skipped and
// amounts that failed to parse contribute zero.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range txs {
		s.Count++
		if !t.AmountValid {
			s.InvalidAmounts++
		}
		switch t.Type {
		case models.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case models.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			cat := t.Category
			if cat == "" {
				cat = OtherCategory
			}
			s.ExpenseByCategory.add(cat, t.Amount)
		default:
			s.Unrecognized++
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// CategoryAmount is one entry of a CategoryTotals.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryTotals maps category to amount, iterating in first-insertion order.
// The zero value is empty and ready to use.
type CategoryTotals struct {
	order  []string
	totals map[string]decimal.Decimal
}

func (c *CategoryTotals) add(category string, amount decimal.Decimal) {
	if c.totals == nil {
		c.totals = make(map[string]decimal.Decimal)
	}
	cur, ok := c.totals[category]
	if !ok {
		c.order = append(c.order, category)
		cur = decimal.Zero
	}
	c.totals[category] = cur.Add(amount)
}

func (c CategoryTotals) Len() int { return len(c.order) }

func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	v, ok := c.totals[category]
	return v, ok
}

// Items returns the entries in insertion order.
func (c CategoryTotals) Items() []CategoryAmount {
	out := make([]CategoryAmount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, CategoryAmount{Category: k, Amount: c.totals[k]})
	}
	return out
}

func (c CategoryTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}
