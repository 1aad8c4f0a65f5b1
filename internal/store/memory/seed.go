package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/store"
)

// DemoMembership is the membership identifier Seed creates.
const DemoMembership = "42"

type seedTx struct {
	amount   int64
	typ      string
	category string
	desc     string
	monthAgo int
}

var demoTransactions = []seedTx{
	{3500, "income", "Salário", "Salário mensal", 0},
	{800, "income", "Freelance", "Projeto site", 0},
	{850, "expense", "Alimentação", "Mercado", 0},
	{320, "expense", "Transporte", "Combustível", 0},
	{450, "expense", "Lazer", "Cinema e jantar", 0},
	{4300, "income", "Salário", "Salário mensal", 1},
	{2750, "expense", "", "Despesas do mês", 1},
	{4100, "income", "Salário", "Salário mensal", 2},
	{3100, "expense", "Moradia", "Aluguel e contas", 2},
}

// Seed fills s with one demo user and their records, dated relative to now.
func Seed(ctx context.Context, s *Store, now time.Time) error {
	user, err := s.Insert(ctx, "users", store.Row{
		"matricula":   DemoMembership,
		"name":        "Maria Silva",
		"email":       "maria@example.com",
		"phone":       "+55 11 90000-0000",
		"active_plan": true,
		"created_at":  now.AddDate(-1, 0, 0),
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	uid := user["id"]

	for i, t := range demoTransactions {
		at := now.AddDate(0, -t.monthAgo, 0).Add(-time.Duration(i) * time.Hour)
		if _, err := s.Insert(ctx, "transactions", store.Row{
			"user_id":     uid,
			"amount":      decimal.NewFromInt(t.amount),
			"type":        t.typ,
			"category":    t.category,
			"description": t.desc,
			"created_at":  at,
		}); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}

	cards := []store.Row{
		{"card_name": "Nubank", "limit_amount": decimal.NewFromInt(5000), "used_amount": decimal.NewFromInt(850), "closing_day": 10, "due_day": 18},
		{"card_name": "Inter", "limit_amount": decimal.NewFromInt(2000), "used_amount": decimal.NewFromInt(1400), "closing_day": 1, "due_day": 8},
	}
	for _, c := range cards {
		c["user_id"] = uid
		if _, err := s.Insert(ctx, "credit_cards", c); err != nil {
			return fmt.Errorf("seed card: %w", err)
		}
	}

	reminders := []store.Row{
		{"title": "Cartão Nubank", "due_date": now.AddDate(0, 0, 3), "status": "pending", "amount": decimal.NewFromInt(1250)},
		{"title": "Aluguel", "due_date": now.AddDate(0, 0, 5), "status": "pending", "amount": decimal.NewFromInt(1800)},
		{"title": "Internet", "due_date": now.AddDate(0, 0, 10), "status": "pending", "amount": decimal.NewFromInt(89)},
		{"title": "Academia", "due_date": now.AddDate(0, 0, -4), "status": "done", "amount": decimal.NewFromInt(120)},
	}
	for _, r := range reminders {
		r["user_id"] = uid
		if _, err := s.Insert(ctx, "reminders", r); err != nil {
			return fmt.Errorf("seed reminder: %w", err)
		}
	}
	return nil
}
