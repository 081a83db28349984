package pipeline

import (
	"fmt"

	"crm/internal/model"

	"github.com/google/uuid"
)

// Mutator receives the full replacement sequence after an effective drop.
// The owner of the canonical sequence persists it.
type Mutator func(deals []model.Deal)

// State is the persisted view state of a board. Selected is the id of the
// deal whose detail is open, nil when the detail is closed.
type State struct {
	View          ViewMode      `json:"view"`
	Search        string        `json:"search"`
	SortField     SortField     `json:"sort_field"`
	SortDirection SortDirection `json:"sort_direction"`
	Selected      *uuid.UUID    `json:"selected,omitempty"`
}

func DefaultState() State {
	return State{
		View:          ViewKanban,
		SortField:     SortTitle,
		SortDirection: Ascending,
	}
}

// Board holds a working reference to the canonical deal sequence and the view
// state derived from user interaction. A Board is not safe for concurrent use;
// every method runs to completion before the next is called.
type Board struct {
	deals  []model.Deal
	mutate Mutator
	state  State
	detail *model.Deal
}

func NewBoard(deals []model.Deal, mutate Mutator) *Board {
	if mutate == nil {
		mutate = func([]model.Deal) {}
	}
	return &Board{deals: deals, mutate: mutate, state: DefaultState()}
}

// Restore applies a previously saved state. A selection whose deal is no
// longer on the board restores as closed.
func (b *Board) Restore(s State) error {
	if !s.View.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownViewMode, s.View)
	}
	if !s.SortField.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSortField, s.SortField)
	}
	if !s.SortDirection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSortDirection, s.SortDirection)
	}
	b.state = s
	b.state.Selected = nil
	b.detail = nil
	if s.Selected != nil {
		if d, ok := b.find(*s.Selected); ok {
			b.detail = &d
			id := d.ID
			b.state.Selected = &id
		}
	}
	return nil
}

func (b *Board) State() State {
	s := b.state
	if s.Selected != nil {
		id := *s.Selected
		s.Selected = &id
	}
	return s
}

// Deals returns the canonical sequence the board currently works on.
func (b *Board) Deals() []model.Deal {
	return b.deals
}

// SetDeals replaces the working reference with a fresh snapshot from the owner.
func (b *Board) SetDeals(deals []model.Deal) {
	b.deals = deals
}

func (b *Board) View() ViewMode {
	return b.state.View
}

// ToggleView switches between the kanban and list renderings.
func (b *Board) ToggleView() ViewMode {
	if b.state.View == ViewKanban {
		b.state.View = ViewList
	} else {
		b.state.View = ViewKanban
	}
	return b.state.View
}

func (b *Board) SetSearch(term string) {
	b.state.Search = term
}

// ToggleSort flips the direction when field is already active, otherwise
// switches to field in ascending order.
func (b *Board) ToggleSort(field SortField) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSortField, field)
	}
	if field == b.state.SortField {
		b.state.SortDirection = b.state.SortDirection.flip()
		return nil
	}
	b.state.SortField = field
	b.state.SortDirection = Ascending
	return nil
}

// Visible returns the filtered and sorted deals shown by both views.
func (b *Board) Visible() []model.Deal {
	out, err := Sort(Filter(b.deals, b.state.Search), b.state.SortField, b.state.SortDirection)
	if err != nil {
		// Restore and ToggleSort only ever store valid sort settings.
		panic(err)
	}
	return out
}

func (b *Board) Columns() []Column {
	return Group(b.Visible())
}

// Drop applies a finished drag to the canonical sequence and hands the new
// sequence to the mutator. A cancelled drag changes nothing and does not call
// the mutator.
func (b *Board) Drop(ev DragEvent) error {
	next, changed, err := ApplyDrag(b.deals, ev)
	if err != nil || !changed {
		return err
	}
	b.deals = next
	b.mutate(next)
	return nil
}

// OpenDetail selects the deal with the given id. The detail can only be opened
// from the closed state.
func (b *Board) OpenDetail(id uuid.UUID) (model.Deal, error) {
	if b.detail != nil {
		return model.Deal{}, ErrDetailOpen
	}
	d, ok := b.find(id)
	if !ok {
		return model.Deal{}, ErrDealNotFound
	}
	b.detail = &d
	b.state.Selected = &d.ID
	return d, nil
}

func (b *Board) CloseDetail() {
	b.detail = nil
	b.state.Selected = nil
}

// Detail returns the selected deal as it was when the detail was opened.
func (b *Board) Detail() (model.Deal, bool) {
	if b.detail == nil {
		return model.Deal{}, false
	}
	return *b.detail, true
}

func (b *Board) find(id uuid.UUID) (model.Deal, bool) {
	for _, d := range b.deals {
		if d.ID == id {
			return d, true
		}
	}
	return model.Deal{}, false
}
