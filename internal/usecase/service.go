package usecase

import (
	"time"

	"seva-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking  BookingService
	Reminder ReminderService
}

func NewService(repo *repository.Repository, notifier Notifier, loc *time.Location, log *zap.Logger) *Service {
	return &Service{
		Booking:  NewBookingService(repo.Booking, log),
		Reminder: NewReminderService(repo.Booking, notifier, loc, log),
	}
}
