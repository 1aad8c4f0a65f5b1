package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/store"
)

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType normalizes a type label. The Portuguese labels the
// dashboard forms post ("receita", "gasto") map onto income and expense.
// Unrecognized labels are returned lowercased with ok == false.
func ParseTransactionType(s string) (TransactionType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "income", "receita":
		return Income, true
	case "expense", "gasto", "despesa":
		return Expense, true
	}
	return TransactionType(v), false
}

// Known reports whether t is income or expense.
func (t TransactionType) Known() bool {
	return t == Income || t == Expense
}

type Transaction struct {
	ID          string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID      string          `gorm:"type:uuid;index;not null" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID" json:"-"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	AmountValid bool            `gorm:"-" json:"amount_valid"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

func (Transaction) TableName() string { return TableTransactions }

// TransactionFromRow decodes a transactions row. An amount that cannot be
// parsed decodes to zero with AmountValid == false instead of failing the row.
func TransactionFromRow(row store.Row) (Transaction, error) {
	id, err := idValue(row)
	if err != nil {
		return Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	amount, err := ParseAmount(row["amount"])
	typ, _ := ParseTransactionType(stringValue(row, "type"))
	return Transaction{
		ID:          id,
		UserID:      stringValue(row, "user_id"),
		Amount:      amount,
		AmountValid: err == nil,
		Type:        typ,
		Category:    strings.TrimSpace(stringValue(row, "category")),
		Description: stringValue(row, "description"),
		CreatedAt:   timeValue(row, "created_at"),
	}, nil
}

// TransactionsFromRows decodes rows in order.
func TransactionsFromRows(rows []store.Row) ([]Transaction, error) {
	out := make([]Transaction, 0, len(rows))
	for _, r := range rows {
		t, err := TransactionFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// NewTransaction is a validated transaction ready to be appended.
type NewTransaction struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
}

// Row builds the insert row for userID.
func (n NewTransaction) Row(userID string, at time.Time) store.Row {
	return store.Row{
		"user_id":     userID,
		"amount":      n.Amount,
		"type":        string(n.Type),
		"category":    n.Category,
		"description": n.Description,
		"created_at":  at,
	}
}
