package view

import (
	"strings"

	"finance-dashboard-go/internal/models"
)

// Draft is the add-transaction form. It is a plain value: every edit
// produces a new Draft that replaces the previous one.
type Draft struct {
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (d Draft) WithAmount(v string) Draft      { d.Amount = v; return d }
func (d Draft) WithType(v string) Draft        { d.Type = v; return d }
func (d Draft) WithCategory(v string) Draft    { d.Category = v; return d }
func (d Draft) WithDescription(v string) Draft { d.Description = v; return d }

// ValidationResult is the outcome of checking a Draft before any write.
type ValidationResult struct {
	Transaction models.NewTransaction
	Problems    []FieldProblem
}

func (r ValidationResult) Valid() bool { return len(r.Problems) == 0 }

// Err returns a *ValidationError, or nil when the draft is valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Problems: r.Problems}
}

// Validate requires an amount and a type. The amount must be a
// non-negative decimal and the type income or expense.
func (d Draft) Validate() ValidationResult {
	var res ValidationResult

	if strings.TrimSpace(d.Amount) == "" {
		res.Problems = append(res.Problems, FieldProblem{Field: "amount", Message: "required"})
	} else if amount, err := models.ParseAmount(d.Amount); err != nil {
		res.Problems = append(res.Problems, FieldProblem{Field: "amount", Message: "must be a non-negative number"})
	} else {
		res.Transaction.Amount = amount
	}

	if strings.TrimSpace(d.Type) == "" {
		res.Problems = append(res.Problems, FieldProblem{Field: "type", Message: "required"})
	} else if typ, ok := models.ParseTransactionType(d.Type); !ok {
		res.Problems = append(res.Problems, FieldProblem{Field: "type", Message: "must be income or expense"})
	} else {
		res.Transaction.Type = typ
	}

	res.Transaction.Category = strings.TrimSpace(d.Category)
	res.Transaction.Description = strings.TrimSpace(d.Description)
	return res
}
