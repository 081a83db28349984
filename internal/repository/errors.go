package repository

import "errors"

// Common repository errors
var (
	ErrDealNotFound     = errors.New("deal not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrProposalNotFound = errors.New("proposal not found")
)
