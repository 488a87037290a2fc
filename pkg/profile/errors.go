package profile

import "errors"

// Domain errors for the profile model. Admission errors fire synchronously
// when an invalid object is offered to an aggregate; identity errors fire
// when an operation is attempted across distinct logical profiles.
var (
	ErrInvalidAttribute  = errors.New("invalid attribute")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrInvalidSession    = errors.New("invalid session")
	ErrNilProfile        = errors.New("profile is nil")
	ErrProfileIDMismatch = errors.New("profile id mismatch")
)
