package finance

import "finance-dashboard-go/internal/models"

// Filter narrows already-fetched transactions. Empty fields match everything.
type Filter struct {
	Category string
	Type     models.TransactionType
}

func (f Filter) Empty() bool { return f.Category == "" && f.Type == "" }

func (f Filter) Match(t models.Transaction) bool {
	categoryMatch := f.Category == "" || t.Category == f.Category
	typeMatch := f.Type == "" || t.Type == f.Type
	return categoryMatch && typeMatch
}

// Apply returns the matching transactions in their original order.
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	if f.Empty() {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Categories lists distinct non-empty categories in first-occurrence order.
func Categories(txs []models.Transaction) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range txs {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}
