package domain

import "errors"

var (
	// ErrUnknownAction is returned when a lifecycle action name is not recognized.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNotFound is returned when the runtime reports no matching object.
	ErrNotFound = errors.New("no container found")
	// ErrNoStats is returned when the runtime printed no stats line.
	ErrNoStats = errors.New("no stats available")
)
