// Package pipeline models the sales pipeline board: the filtered and sorted
// projection of the canonical deal sequence into stage columns, drag-driven
// stage reassignment and the read-only deal detail.
package pipeline

import (
	"slices"
	"strings"

	"crm/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type ViewMode string

const (
	ViewKanban ViewMode = "kanban"
	ViewList   ViewMode = "list"
)

func (v ViewMode) Valid() bool {
	return v == ViewKanban || v == ViewList
}

type SortField string

const (
	SortTitle   SortField = "title"
	SortCompany SortField = "company"
	SortValue   SortField = "value"
	SortStage   SortField = "stage"
	SortContact SortField = "contact"
)

func (f SortField) Valid() bool {
	switch f {
	case SortTitle, SortCompany, SortValue, SortStage, SortContact:
		return true
	}
	return false
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

func (d SortDirection) flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Filter returns the deals whose title or company contains term, ignoring
// case. An empty term keeps every deal. The input is never modified.
func Filter(deals []model.Deal, term string) []model.Deal {
	needle := strings.ToLower(term)
	out := make([]model.Deal, 0, len(deals))
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.Title), needle) ||
			strings.Contains(strings.ToLower(d.Company), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Sort returns a stably sorted copy of deals. Value compares numerically;
// every other field compares its text with pt-BR collation. Descending
// reverses the comparator, so equal keys keep their input order either way.
func Sort(deals []model.Deal, field SortField, dir SortDirection) ([]model.Deal, error) {
	if !field.Valid() {
		return nil, ErrUnknownSortField
	}
	if !dir.Valid() {
		return nil, ErrUnknownSortDirection
	}

	out := slices.Clone(deals)
	if out == nil {
		out = []model.Deal{}
	}

	var cmp func(a, b model.Deal) int
	if field == SortValue {
		cmp = func(a, b model.Deal) int {
			switch {
			case a.Value < b.Value:
				return -1
			case a.Value > b.Value:
				return 1
			}
			return 0
		}
	} else {
		col := collate.New(language.BrazilianPortuguese)
		cmp = func(a, b model.Deal) int {
			return col.CompareString(sortKey(a, field), sortKey(b, field))
		}
	}
	if dir == Descending {
		asc := cmp
		cmp = func(a, b model.Deal) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, cmp)
	return out, nil
}

func sortKey(d model.Deal, field SortField) string {
	switch field {
	case SortCompany:
		return d.Company
	case SortStage:
		return string(d.Stage)
	case SortContact:
		return d.Contact
	}
	return d.Title
}
