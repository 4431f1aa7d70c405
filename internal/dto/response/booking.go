package response

import (
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/internal/daterule"
)

type BookingResponse struct {
	ID             int64                `json:"id"`
	SevakarthaName string               `json:"sevakartha_name"`
	Department     string               `json:"department"`
	SevaType       string               `json:"seva_type"`
	PoojaDate      string               `json:"pooja_date"`
	Day            int                  `json:"day"`
	Month          int                  `json:"month"`
	Year           int                  `json:"year"`
	Status         entity.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	BookingID int64           `json:"booking_id"`
	Booking   BookingResponse `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

type HealthResponse struct {
	Database     string `json:"database"`
	BookingCount int64  `json:"booking_count"`
}

// BookingToResponse renders dates as YYYY-MM-DD, never full timestamps
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		SevakarthaName: b.SevakarthaName,
		Department:     b.Department,
		SevaType:       b.SevaType,
		PoojaDate:      daterule.Format(b.PoojaDate),
		Day:            b.Day,
		Month:          b.Month,
		Year:           b.Year,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}
