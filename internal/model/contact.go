package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactActive   ContactStatus = "active"
	ContactInactive ContactStatus = "inactive"
)

// Label returns the pt-BR badge text shown for the status.
func (s ContactStatus) Label() string {
	if s == ContactActive {
		return "Ativo"
	}
	return "Inativo"
}

type Contact struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Company     string        `json:"company"`
	Position    string        `json:"position"`
	LastContact *time.Time    `json:"last_contact,omitempty"`
	Status      ContactStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
