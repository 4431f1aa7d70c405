package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/internal/data/repository"
	"seva-booking/internal/daterule"

	"go.uber.org/zap"
)

// Notifier delivers a reminder for a single booking.
type Notifier interface {
	Send(ctx context.Context, booking *entity.Booking) error
}

type ReminderService interface {
	Run(ctx context.Context)
}

type reminderService struct {
	repo     repository.BookingRepository
	notifier Notifier
	loc      *time.Location
	log      *zap.Logger

	now     func() time.Time
	running atomic.Bool
}

// NewReminderService builds the daily dispatcher. loc is the wall-clock
// zone used to decide what "tomorrow" means (Asia/Kolkata in production).
func NewReminderService(repo repository.BookingRepository, notifier Notifier, loc *time.Location, log *zap.Logger) ReminderService {
	return &reminderService{
		repo:     repo,
		notifier: notifier,
		loc:      loc,
		log:      log.With(zap.String("service", "reminder")),
		now:      time.Now,
	}
}

// Run sends one reminder per confirmed booking scheduled for tomorrow.
// A failure on one booking never aborts the batch; a store failure aborts
// this run only. Runs are once daily, but mail latency is unbounded, so a
// CAS flag skips a run while the previous one is still sending.
func (s *reminderService) Run(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn("Previous reminder run still in progress, skipping")
		return
	}
	defer s.running.Store(false)

	tomorrow := s.tomorrow()

	s.log.Info("Running daily pooja reminder check",
		zap.String("target_date", daterule.Format(tomorrow)),
	)

	bookings, err := s.repo.FindByDateAndStatus(ctx, tomorrow, entity.BookingStatusConfirmed)
	if err != nil {
		s.log.Error("Reminder run aborted, could not read bookings", zap.Error(err))
		return
	}

	if len(bookings) == 0 {
		s.log.Info("No pooja scheduled for tomorrow")
		return
	}

	sent := 0
	for _, booking := range bookings {
		if err := s.notifier.Send(ctx, booking); err != nil {
			s.log.Error("Failed to send reminder",
				zap.Error(err),
				zap.Int64("booking_id", booking.ID),
				zap.String("seva_type", booking.SevaType),
			)
			continue
		}
		sent++
	}

	s.log.Info("Reminder run finished",
		zap.String("target_date", daterule.Format(tomorrow)),
		zap.Int("matched", len(bookings)),
		zap.Int("sent", sent),
	)
}

// tomorrow is the next calendar date as seen on the reference zone's wall
// clock, expressed as a UTC-midnight value to match stored pooja dates.
func (s *reminderService) tomorrow() time.Time {
	year, month, day := s.now().In(s.loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
