package wire

import (
	"seva-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// Booking endpoints keep the original /oms/details base path
	r.Route("/oms/details", func(r chi.Router) {
		// GET /oms/details/ - All bookings, ascending by pooja date
		r.Get("/", bookingHandler.ListBookings)

		// POST /oms/details/add - Create booking (exact 3-day rule applies)
		r.Post("/add", bookingHandler.CreateBooking)

		// GET /oms/details/health - Store connectivity + row count
		r.Get("/health", bookingHandler.Health)

		// GET /oms/details/{id} - Single booking
		r.Get("/{id}", bookingHandler.GetBooking)

		// DELETE /oms/details/{id} - Hard delete
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
