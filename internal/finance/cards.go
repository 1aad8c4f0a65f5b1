package finance

import (
	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/models"
)

// utilizationWarning is the percentage above which a card is flagged.
var utilizationWarning = decimal.NewFromInt(60)

type CreditUtilization struct {
	CardID     string          `json:"card_id"`
	CardName   string          `json:"card_name"`
	Used       decimal.Decimal `json:"used"`
	Limit      decimal.Decimal `json:"limit"`
	Available  decimal.Decimal `json:"available"`
	Percentage decimal.Decimal `json:"percentage"`
	DueDay     int             `json:"due_day"`
	Warning    bool            `json:"warning"`
}

// Utilization reports how much of a card's limit the current cycle uses.
// A card without a limit reports zero.
func Utilization(c models.CreditCard) CreditUtilization {
	u := CreditUtilization{
		CardID:     c.ID,
		CardName:   c.Name,
		Used:       c.Used,
		Limit:      c.Limit,
		Available:  c.Limit.Sub(c.Used),
		Percentage: decimal.Zero,
		DueDay:     c.DueDay,
	}
	if u.Available.IsNegative() {
		u.Available = decimal.Zero
	}
	if c.Limit.IsPositive() {
		u.Percentage = c.Used.Div(c.Limit).Mul(decimal.NewFromInt(100)).Round(2)
		u.Warning = u.Percentage.GreaterThan(utilizationWarning)
	}
	return u
}

// MostUsedCard returns the card with the highest current spend. Ties keep
// the earliest card in cards; ok is false for an empty slice.
func MostUsedCard(cards []models.CreditCard) (card models.CreditCard, ok bool) {
	for i, c := range cards {
		if i == 0 || c.Used.GreaterThan(card.Used) {
			card = c
		}
	}
	return card, len(cards) > 0
}
