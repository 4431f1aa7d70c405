package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"seva-booking/internal/daterule"
	"seva-booking/internal/dto/request"
	"seva-booking/internal/dto/response"
	"seva-booking/internal/usecase"
	"seva-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /oms/details/add
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", response.CreateBookingResponse{
		BookingID: booking.ID,
		Booking:   *booking,
	})
}

// ListBookings handles GET /oms/details/
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /oms/details/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Booking ID must be a positive integer", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /oms/details/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Booking ID must be a positive integer", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted", map[string]string{
		"message": "Booking deleted successfully",
	})
}

// Health handles GET /oms/details/health
func (h *BookingHandler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.service.HealthCheck(r.Context())
	if err != nil {
		utils.ResponseInternalError(w, "Database unavailable")
		return
	}

	utils.ResponseSuccess(w, "success", health)
}

// handleServiceError maps service errors to HTTP responses. 4xx payloads
// carry enough detail to self-correct; 5xx stay generic.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var ruleErr *usecase.RuleViolationError
	var conflictErr *usecase.ConflictError

	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, daterule.ErrInvalidDate):
		h.log.Warn(operation+" failed - invalid date", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &ruleErr):
		h.log.Warn(operation+" failed - outside booking window", zap.Error(err))
		utils.ResponseBadRequest(w, ruleErr.Error(), map[string]string{
			"allowed_booking_date": daterule.Format(ruleErr.AllowedDate),
		})

	case errors.As(err, &conflictErr):
		h.log.Warn(operation+" failed - date conflict", zap.Error(err))
		utils.ResponseConflict(w, conflictErr.Error(), map[string]string{
			"booked_by": conflictErr.BookedBy,
		})

	case errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
