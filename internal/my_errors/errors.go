package my_errors

import "errors"

// Sentinel my_errors для бизнес-логики.
// Messages are returned verbatim as the response detail.
var (
	// Activity my_errors
	ErrActivityNotFound = errors.New("Activity not found") //nolint:staticcheck

	// Participant my_errors
	ErrAlreadySignedUp = errors.New("Student is already signed up")
	ErrNotSignedUp     = errors.New("Student is not signed up for this activity")

	// Seed my_errors
	ErrInvalidSeed = errors.New("invalid seed data")

	// Validation my_errors
	ErrEmptyField = errors.New("required field is empty")
)
