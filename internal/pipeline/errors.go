package pipeline

import "errors"

var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
	ErrUnknownViewMode      = errors.New("unknown view mode")
	ErrUnknownStage         = errors.New("unknown stage")
	ErrInvalidDrag          = errors.New("drag position out of range")
	ErrDealNotFound         = errors.New("deal not found on board")
	ErrDetailOpen           = errors.New("deal detail is already open")
)
