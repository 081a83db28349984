package model

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a sales opportunity tracked through the pipeline stages.
// Position holds the deal's index in the canonical sequence.
type Deal struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title              string     `gorm:"not null" json:"title"`
	Company            string     `gorm:"not null" json:"company"`
	Value              float64    `gorm:"not null;check:value >= 0" json:"value"`
	Stage              Stage      `gorm:"type:varchar(32);not null;index" json:"stage"`
	Position           int        `gorm:"not null" json:"position"`
	Probability        int        `json:"probability"`
	Contact            string     `json:"contact,omitempty"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	ExpectedCloseDate  *time.Time `json:"expected_close_date,omitempty"`
	LastActivity       string     `json:"last_activity,omitempty"`
	ResponsibleName    string     `json:"responsible_name,omitempty"`
	Industry           string     `json:"industry,omitempty"`
	FirstContactDate   *time.Time `json:"first_contact_date,omitempty"`
	FollowUpDate       *time.Time `json:"follow_up_date,omitempty"`
	ContactResponsible string     `json:"contact_responsible,omitempty"`
	CompanyResponsible string     `json:"company_responsible,omitempty"`
	ContextInfo        string     `json:"context_info,omitempty"`
	InteractionHistory string     `json:"interaction_history,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
