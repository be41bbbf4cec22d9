package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions   = errors.New("invalid hall dimensions")
	ErrInvalidInterval     = errors.New("invalid session interval: start must be before end")
	ErrInvalidName         = errors.New("invalid name")
	ErrSchedulingConflict  = errors.New("scheduling conflict")
	ErrOutOfRange          = errors.New("seat out of range")
	ErrSeatAlreadyReserved = errors.New("seat already reserved")
	ErrSeatNotHeld         = errors.New("seat not held for an order")
	ErrInvalidSeatCount    = errors.New("invalid seat count")
	ErrSessionNameNotFound = errors.New("session name not found")
	ErrNoQualifyingSession = errors.New("no qualifying session")
	ErrVenueExists         = errors.New("venue already exists")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrHallNotFound        = errors.New("hall not found")
	ErrSessionNotFound     = errors.New("session not found")
)

// ConflictError identifies the already scheduled session a candidate overlaps.
type ConflictError struct {
	Existing SessionInfo
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: session %q already runs %s", ErrSchedulingConflict, e.Existing.Name, e.Existing.Interval)
}

func (e *ConflictError) Unwrap() error { return ErrSchedulingConflict }

// SeatError carries the coordinate a seat operation failed on.
type SeatError struct {
	Seat Seat
	Err  error
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("seat %s: %v", e.Seat, e.Err)
}

func (e *SeatError) Unwrap() error { return e.Err }
