package leads

import "errors"

var (
	// ErrMissingSession is returned when the session identifier is absent
	ErrMissingSession = errors.New("session id is required")

	// ErrMissingContact is returned when both email and phone are missing
	ErrMissingContact = errors.New("either email or phone is required")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")
)
