package tui

import "errors"

// ErrMissingCheckInService is returned when the check-in service is not provided.
var ErrMissingCheckInService = errors.New("tui: check-in service is required")

// ErrMissingContactService is returned when the contact service is not provided.
var ErrMissingContactService = errors.New("tui: contact service is required")
