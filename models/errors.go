package models

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNoLowStockSelected  = errors.New("None of the selected items are low on stock")
	ErrConflict            = errors.New("record already exists")
	ErrForbidden           = errors.New("insufficient permissions")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrBudgetExceeded      = errors.New("expense exceeds remaining budget")
	ErrRequestNotOpen      = errors.New("supply request is not open")
	ErrReorderNotDeletable = errors.New("only pending reorder requests can be deleted")
)
