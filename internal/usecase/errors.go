package usecase

import (
	"errors"
	"fmt"
	"time"

	"seva-booking/internal/daterule"
)

var (
	// ErrValidation is returned when required fields are missing or empty
	ErrValidation = errors.New("validation failed")

	// ErrBookingNotFound is returned when no booking matches the given id
	ErrBookingNotFound = errors.New("booking not found")
)

// RuleViolationError is returned when a well-formed pooja date is outside
// the exact booking day. AllowedDate is the one day it could be booked on.
type RuleViolationError struct {
	AllowedDate time.Time
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("booking window closed: this pooja date can only be booked on %s",
		daterule.Format(e.AllowedDate))
}

// ConflictError is returned when the pooja date already has a booking.
type ConflictError struct {
	BookedBy string
}

func (e *ConflictError) Error() string {
	if e.BookedBy == "" {
		return "this pooja date is already booked"
	}
	return fmt.Sprintf("this pooja date is already booked by %s", e.BookedBy)
}
