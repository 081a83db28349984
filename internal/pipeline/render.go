package pipeline

import (
	"fmt"

	"crm/internal/format"
	"crm/internal/model"
)

// Card is a deal as shown on the board, with its value already formatted.
type Card struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	Stage          string  `json:"stage"`
	StageLabel     string  `json:"stage_label"`
}

type ColumnView struct {
	Stage          string `json:"stage"`
	Label          string `json:"label"`
	Count          int    `json:"count"`
	FormattedTotal string `json:"formatted_total"`
	Cards          []Card `json:"cards"`
}

// DetailView is the read-only detail of a deal.
type DetailView struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Company           string `json:"company"`
	Value             string `json:"value"`
	Stage             string `json:"stage"`
	Probability       string `json:"probability"`
	Contact           string `json:"contact"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	LastActivity      string `json:"last_activity"`
	ExpectedCloseDate string `json:"expected_close_date"`
}

func NewCard(d model.Deal) Card {
	return Card{
		ID:             d.ID.String(),
		Title:          d.Title,
		Company:        d.Company,
		Value:          d.Value,
		FormattedValue: format.BRL(d.Value),
		Stage:          string(d.Stage),
		StageLabel:     d.Stage.Label(),
	}
}

func NewCards(deals []model.Deal) []Card {
	cards := make([]Card, len(deals))
	for i, d := range deals {
		cards[i] = NewCard(d)
	}
	return cards
}

func NewColumnViews(cols []Column) []ColumnView {
	out := make([]ColumnView, len(cols))
	for i, c := range cols {
		out[i] = ColumnView{
			Stage:          string(c.Stage),
			Label:          c.Label,
			Count:          len(c.Deals),
			FormattedTotal: format.BRL(c.Total),
			Cards:          NewCards(c.Deals),
		}
	}
	return out
}

func NewDetailView(d model.Deal) DetailView {
	return DetailView{
		ID:                d.ID.String(),
		Title:             d.Title,
		Company:           d.Company,
		Value:             format.BRL(d.Value),
		Stage:             d.Stage.Label(),
		Probability:       fmt.Sprintf("%d%%", d.Probability),
		Contact:           d.Contact,
		Email:             d.Email,
		Phone:             d.Phone,
		LastActivity:      d.LastActivity,
		ExpectedCloseDate: format.Date(d.ExpectedCloseDate),
	}
}
