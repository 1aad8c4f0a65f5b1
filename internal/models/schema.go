package models

import "finance-dashboard-go/internal/store"

const (
	TableUsers        = "users"
	TableTransactions = "transactions"
	TableCreditCards  = "credit_cards"
	TableReminders    = "reminders"
)

// Schema is the set of columns the dashboard is allowed to read or write.
func Schema() store.Schema {
	return store.Schema{
		TableUsers:        {"id", "matricula", "name", "email", "phone", "active_plan", "created_at"},
		TableTransactions: {"id", "user_id", "amount", "type", "category", "description", "created_at"},
		TableCreditCards:  {"id", "user_id", "card_name", "limit_amount", "used_amount", "closing_day", "due_day", "created_at"},
		TableReminders:    {"id", "user_id", "title", "due_date", "status", "amount", "created_at"},
	}
}

// All returns the gorm models, used for development auto-migration.
func All() []any {
	return []any{&User{}, &Transaction{}, &CreditCard{}, &Reminder{}}
}
