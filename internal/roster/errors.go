package roster

import "errors"

// Submission validation errors
var (
	ErrMissingEmail    = errors.New("selected teammate has no email address")
	ErrNothingSelected = errors.New("select at least one teammate to invite or remove")
)
