package models

import (
	"fmt"
	"time"

	"finance-dashboard-go/internal/store"
)

// User is keyed externally by its membership identifier (matrícula).
type User struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Matricula  string    `gorm:"uniqueIndex;not null" json:"matricula"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	ActivePlan bool      `gorm:"default:false" json:"active_plan"` // owned by billing
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string { return TableUsers }

// UserFromRow decodes a users row.
func UserFromRow(row store.Row) (User, error) {
	id, err := idValue(row)
	if err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	return User{
		ID:         id,
		Matricula:  stringValue(row, "matricula"),
		Name:       stringValue(row, "name"),
		Email:      stringValue(row, "email"),
		Phone:      stringValue(row, "phone"),
		ActivePlan: boolValue(row, "active_plan"),
		CreatedAt:  timeValue(row, "created_at"),
	}, nil
}
