package repository

import "errors"

var (
	// ErrBookingNotFound is returned when no row matches the given id
	ErrBookingNotFound = errors.New("repository: booking not found")

	// ErrDuplicateDate is returned when an insert hits the unique
	// constraint on pooja_date
	ErrDuplicateDate = errors.New("repository: pooja date already booked")
)
