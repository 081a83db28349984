package pipeline

import (
	"fmt"
	"slices"

	"crm/internal/model"
)

// Destination is where a dragged deal was dropped: the target stage column
// and the index in the canonical sequence.
type Destination struct {
	Stage model.Stage
	Index int
}

// DragEvent is the outcome of a drag gesture. A nil Destination means the
// drag was cancelled.
type DragEvent struct {
	SourceIndex int
	Destination *Destination
}

func (e DragEvent) Cancelled() bool {
	return e.Destination == nil
}

// ApplyDrag removes the deal at the source index, rewrites its stage to the
// destination stage and inserts it at the destination index. The input slice
// is left untouched; changed is false only for a cancelled drag, in which
// case deals is returned as is.
func ApplyDrag(deals []model.Deal, ev DragEvent) (next []model.Deal, changed bool, err error) {
	if ev.Cancelled() {
		return deals, false, nil
	}
	dst := *ev.Destination
	if !dst.Stage.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownStage, dst.Stage)
	}
	if ev.SourceIndex < 0 || ev.SourceIndex >= len(deals) {
		return nil, false, fmt.Errorf("%w: source %d of %d", ErrInvalidDrag, ev.SourceIndex, len(deals))
	}
	if dst.Index < 0 || dst.Index > len(deals)-1 {
		return nil, false, fmt.Errorf("%w: destination %d of %d", ErrInvalidDrag, dst.Index, len(deals))
	}

	moved := deals[ev.SourceIndex]
	moved.Stage = dst.Stage

	next = make([]model.Deal, 0, len(deals))
	next = append(next, deals[:ev.SourceIndex]...)
	next = append(next, deals[ev.SourceIndex+1:]...)
	next = slices.Insert(next, dst.Index, moved)
	return next, true, nil
}
