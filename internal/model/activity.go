package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityMeeting ActivityType = "meeting"
	ActivityEmail   ActivityType = "email"
	ActivityTask    ActivityType = "task"
)

type ActivityStatus string

const (
	ActivityPending   ActivityStatus = "pending"
	ActivityCompleted ActivityStatus = "completed"
)

// DisplayMeta describes how an enumerated value is presented.
type DisplayMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color,omitempty"`
}

// ActivityTypes lists every activity type.
func ActivityTypes() []ActivityType {
	return []ActivityType{ActivityCall, ActivityMeeting, ActivityEmail, ActivityTask}
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityMeeting, ActivityEmail, ActivityTask:
		return true
	}
	return false
}

// Meta returns the display metadata of t. It panics on a value outside
// ActivityTypes, which Valid rejects at the API boundary.
func (t ActivityType) Meta() DisplayMeta {
	switch t {
	case ActivityCall:
		return DisplayMeta{Label: "Ligação", Icon: "phone"}
	case ActivityMeeting:
		return DisplayMeta{Label: "Reunião", Icon: "video"}
	case ActivityEmail:
		return DisplayMeta{Label: "E-mail", Icon: "mail"}
	case ActivityTask:
		return DisplayMeta{Label: "Tarefa", Icon: "check-circle"}
	default:
		panic("model: unknown activity type " + string(t))
	}
}

func (s ActivityStatus) Valid() bool {
	return s == ActivityPending || s == ActivityCompleted
}

// Activity is a call, meeting, e-mail or task related to either a deal or a contact.
type Activity struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Type        ActivityType   `gorm:"type:varchar(16);not null" json:"type"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	Status      ActivityStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	DealID      *uuid.UUID     `gorm:"type:uuid" json:"deal_id,omitempty"`
	ContactID   *uuid.UUID     `gorm:"type:uuid" json:"contact_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`

	Deal    *Deal    `gorm:"foreignKey:DealID" json:"-"`
	Contact *Contact `gorm:"foreignKey:ContactID" json:"-"`
}

// RelatedTo describes what the activity refers to.
type RelatedTo struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Related resolves the deal or contact the activity belongs to. Deals take
// precedence when both are set.
func (a Activity) Related() *RelatedTo {
	switch {
	case a.DealID != nil:
		r := &RelatedTo{Type: "deal", ID: *a.DealID}
		if a.Deal != nil {
			r.Name = a.Deal.Title
		}
		return r
	case a.ContactID != nil:
		r := &RelatedTo{Type: "contact", ID: *a.ContactID}
		if a.Contact != nil {
			r.Name = a.Contact.Name
		}
		return r
	}
	return nil
}
