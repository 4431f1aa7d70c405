package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/internal/data/repository"
	"seva-booking/internal/daterule"
	"seva-booking/internal/dto/request"
	"seva-booking/internal/dto/response"
	"seva-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) (*response.ListBookingsResponse, error)
	GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id int64) error
	HealthCheck(ctx context.Context) (*response.HealthResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger

	// now is swapped out in tests to pin the admission day
	now func() time.Time
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. All four fields required and non-empty
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Normalize the pooja date to a UTC calendar day
	poojaDate, err := daterule.Normalize(req.PoojaDate)
	if err != nil {
		s.log.Warn("Create booking got unparseable date", zap.String("pooja_date", req.PoojaDate))
		return nil, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", daterule.ErrInvalidDate, req.PoojaDate)
	}

	// 3. Exact-day admission rule
	if !daterule.IsAdmissible(poojaDate, s.now()) {
		allowed := daterule.RequiredBookingDate(poojaDate)
		s.log.Warn("Create booking outside admission day",
			zap.String("pooja_date", daterule.Format(poojaDate)),
			zap.String("allowed_booking_date", daterule.Format(allowed)),
		)
		return nil, &RuleViolationError{AllowedDate: allowed}
	}

	// 4. Advisory conflict pre-check, for a friendlier error message. The
	// unique constraint on the insert below is what actually guarantees
	// one booking per date under concurrency.
	existing, err := s.repo.FindByPoojaDate(ctx, poojaDate)
	if err != nil {
		return nil, fmt.Errorf("check pooja date availability: %w", err)
	}
	if existing != nil {
		s.log.Warn("Pooja date already booked",
			zap.String("pooja_date", daterule.Format(poojaDate)),
			zap.String("booked_by", existing.SevakarthaName),
		)
		return nil, &ConflictError{BookedBy: existing.SevakarthaName}
	}

	// 5. Derive redundant calendar fields from the UTC date
	year, month, day := poojaDate.UTC().Date()

	booking := &entity.Booking{
		SevakarthaName: req.SevakarthaName,
		Department:     req.Department,
		SevaType:       req.SevaType,
		PoojaDate:      poojaDate,
		Day:            day,
		Month:          int(month),
		Year:           year,
		Status:         entity.BookingStatusConfirmed,
	}

	// 6. Single insert; id and created_at are store-assigned
	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDate) {
			// A concurrent request won the date between the pre-check and
			// the insert. Re-read for the sponsor name, best effort.
			bookedBy := ""
			if winner, findErr := s.repo.FindByPoojaDate(ctx, poojaDate); findErr == nil && winner != nil {
				bookedBy = winner.SevakarthaName
			}
			return nil, &ConflictError{BookedBy: bookedBy}
		}

		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("sevakartha_name", req.SevakarthaName),
			zap.String("pooja_date", daterule.Format(poojaDate)),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", created.ID),
		zap.String("sevakartha_name", created.SevakarthaName),
		zap.String("seva_type", created.SevaType),
		zap.String("pooja_date", daterule.Format(created.PoojaDate)),
	)

	resp := response.BookingToResponse(created)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) (*response.ListBookingsResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return &response.ListBookingsResponse{
		Bookings: bookingResponses,
		Count:    len(bookingResponses),
	}, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.Int64("booking_id", id))
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.log.Error("Failed to delete booking", zap.Error(err), zap.Int64("booking_id", id))
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	s.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (s *bookingService) HealthCheck(ctx context.Context) (*response.HealthResponse, error) {
	// A successful count proves store connectivity
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("Health check failed", zap.Error(err))
		return nil, fmt.Errorf("health check: %w", err)
	}

	return &response.HealthResponse{
		Database:     "up",
		BookingCount: count,
	}, nil
}
