// Package daterule holds the calendar rules that decide when a seva booking
// may be created. All arithmetic is date-only and anchored at UTC midnight,
// so the server's local clock zone never shifts the computation.
package daterule

import (
	"errors"
	"time"
)

// LeadDays is how far ahead of the pooja date a booking must be made.
// The rule is an exact match on that day, not a minimum lead time.
const LeadDays = 3

// Layout is the wire format for all dates.
const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Normalize parses a YYYY-MM-DD string into a UTC-midnight date.
func Normalize(input string) (time.Time, error) {
	d, err := time.Parse(Layout, input)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Today truncates now to its UTC calendar date.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RequiredBookingDate is the single day on which poojaDate may be booked:
// exactly LeadDays calendar days before it.
func RequiredBookingDate(poojaDate time.Time) time.Time {
	return Today(poojaDate).AddDate(0, 0, -LeadDays)
}

// IsAdmissible reports whether a booking for poojaDate may be created at
// instant now. Attempts earlier or later than the required day are both
// rejected, which also rules out booking dates already in the past.
func IsAdmissible(poojaDate, now time.Time) bool {
	return Today(now).Equal(RequiredBookingDate(poojaDate))
}

// Format renders a date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(Layout)
}
