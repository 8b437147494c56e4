package domain

import "errors"

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrMatchNotFound    = errors.New("match record not found")
	ErrPickListNotFound = errors.New("pick list not found")
	ErrInvalidTierLists = errors.New("pick list must contain exactly five tier lists")
)
