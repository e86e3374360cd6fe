package board

import "errors"

// Validation errors caught before any network call
var (
	ErrEmptyColumnName     = errors.New("column name cannot be empty")
	ErrDuplicateColumnName = errors.New("another column already uses this name")
	ErrInvalidOrder        = errors.New("order must be a positive number")
	ErrColumnNotFound      = errors.New("column not found")
	ErrNoTargetColumn      = errors.New("move cards to another column before deleting this one")
)
