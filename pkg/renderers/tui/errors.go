package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrMandateDeclined is returned when the user does not accept a mandate.
	ErrMandateDeclined = errors.New("tui: mandate declined")
	// ErrTooManyAttempts is returned when a field is still incomplete after
	// the configured number of attempts.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
)
