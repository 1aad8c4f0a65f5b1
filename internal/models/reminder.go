package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/store"
)

type ReminderStatus string

const (
	StatusPending ReminderStatus = "pending"
	StatusDone    ReminderStatus = "done"
	StatusOverdue ReminderStatus = "overdue"
	StatusUnknown ReminderStatus = "unknown"
)

// ParseReminderStatus accepts the English vocabulary and the Portuguese
// labels older rows carry ("pendente", "concluido", "atrasado").
func ParseReminderStatus(s string) ReminderStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendente":
		return StatusPending
	case "done", "concluido", "concluído":
		return StatusDone
	case "overdue", "atrasado":
		return StatusOverdue
	}
	return StatusUnknown
}

type Reminder struct {
	ID        string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string           `gorm:"type:uuid;index;not null" json:"user_id"`
	User      User             `gorm:"foreignKey:UserID" json:"-"`
	Title     string           `gorm:"not null" json:"title"`
	DueDate   time.Time        `gorm:"index" json:"due_date"`
	Status    ReminderStatus   `gorm:"default:pending" json:"status"`
	Amount    *decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Reminder) TableName() string { return TableReminders }

// EffectiveStatus reports a pending reminder past its due date as overdue.
func (r Reminder) EffectiveStatus(now time.Time) ReminderStatus {
	if r.Status == StatusPending && !r.DueDate.IsZero() && r.DueDate.Before(startOfDay(now)) {
		return StatusOverdue
	}
	return r.Status
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ReminderFromRow(row store.Row) (Reminder, error) {
	id, err := idValue(row)
	if err != nil {
		return Reminder{}, fmt.Errorf("decode reminder: %w", err)
	}
	r := Reminder{
		ID:        id,
		UserID:    stringValue(row, "user_id"),
		Title:     stringValue(row, "title"),
		DueDate:   timeValue(row, "due_date"),
		Status:    ParseReminderStatus(stringValue(row, "status")),
		CreatedAt: timeValue(row, "created_at"),
	}
	if v, ok := row["amount"]; ok && v != nil {
		if amt, err := ParseAmount(v); err == nil {
			r.Amount = &amt
		}
	}
	return r, nil
}

func RemindersFromRows(rows []store.Row) ([]Reminder, error) {
	out := make([]Reminder, 0, len(rows))
	for _, r := range rows {
		rem, err := ReminderFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, nil
}
