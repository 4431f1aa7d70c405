package entity

import (
	"time"
)

type BookingStatus string

const (
	// BookingStatusConfirmed is the only status the create path writes.
	// The column stays free-form text so other lifecycle states can be
	// introduced without a migration.
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	ID             int64         `db:"id"`
	SevakarthaName string        `db:"sevakartha_name"`
	Department     string        `db:"department"`
	SevaType       string        `db:"seva_type"`
	PoojaDate      time.Time     `db:"pooja_date"`
	Day            int           `db:"day"`
	Month          int           `db:"month"`
	Year           int           `db:"year"`
	Status         BookingStatus `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
}
