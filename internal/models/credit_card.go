package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/store"
)

type CreditCard struct {
	ID         string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     string          `gorm:"type:uuid;index;not null" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID" json:"-"`
	Name       string          `gorm:"column:card_name" json:"name"`
	Limit      decimal.Decimal `gorm:"column:limit_amount;type:numeric(14,2)" json:"limit"`
	Used       decimal.Decimal `gorm:"column:used_amount;type:numeric(14,2)" json:"used"` // current cycle, maintained externally
	ClosingDay int             `json:"closing_day"`
	DueDay     int             `json:"due_day"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (CreditCard) TableName() string { return TableCreditCards }

func CreditCardFromRow(row store.Row) (CreditCard, error) {
	id, err := idValue(row)
	if err != nil {
		return CreditCard{}, fmt.Errorf("decode credit card: %w", err)
	}
	limit, _ := ParseAmount(row["limit_amount"])
	used, _ := ParseAmount(row["used_amount"])
	return CreditCard{
		ID:         id,
		UserID:     stringValue(row, "user_id"),
		Name:       stringValue(row, "card_name"),
		Limit:      limit,
		Used:       used,
		ClosingDay: intValue(row, "closing_day"),
		DueDay:     intValue(row, "due_day"),
		CreatedAt:  timeValue(row, "created_at"),
	}, nil
}

func CreditCardsFromRows(rows []store.Row) ([]CreditCard, error) {
	out := make([]CreditCard, 0, len(rows))
	for _, r := range rows {
		c, err := CreditCardFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
