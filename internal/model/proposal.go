package model

import (
	"time"

	"github.com/google/uuid"
)

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

func ProposalStatuses() []ProposalStatus {
	return []ProposalStatus{ProposalDraft, ProposalSent, ProposalAccepted, ProposalRejected}
}

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalDraft, ProposalSent, ProposalAccepted, ProposalRejected:
		return true
	}
	return false
}

// Meta returns the display metadata of s and panics on an unknown status.
func (s ProposalStatus) Meta() DisplayMeta {
	switch s {
	case ProposalDraft:
		return DisplayMeta{Label: "Rascunho", Icon: "clock", Color: "yellow"}
	case ProposalSent:
		return DisplayMeta{Label: "Enviada", Icon: "send", Color: "blue"}
	case ProposalAccepted:
		return DisplayMeta{Label: "Aceita", Icon: "check-circle", Color: "green"}
	case ProposalRejected:
		return DisplayMeta{Label: "Recusada", Icon: "x-circle", Color: "red"}
	default:
		panic("model: unknown proposal status " + string(s))
	}
}

type Proposal struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	DealID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"deal_id"`
	Value      float64        `gorm:"not null" json:"value"`
	Status     ProposalStatus `gorm:"type:varchar(16);not null;default:'draft'" json:"status"`
	ValidUntil *time.Time     `json:"valid_until,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`

	Deal Deal `gorm:"foreignKey:DealID" json:"-"`
}
