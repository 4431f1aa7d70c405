package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for a unique constraint hit
const uniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByPoojaDate(ctx context.Context, poojaDate time.Time) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByDateAndStatus(ctx context.Context, poojaDate time.Time, status entity.BookingStatus) ([]*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts a booking and returns it with the store-assigned id and
// created_at. The unique index on pooja_date is the authoritative conflict
// detector: a violation surfaces as ErrDuplicateDate.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (sevakartha_name, department, seva_type, pooja_date, day, month, year, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.SevakarthaName,
		booking.Department,
		booking.SevaType,
		booking.PoojaDate,
		booking.Day,
		booking.Month,
		booking.Year,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.log.Warn("Duplicate pooja date on insert",
				zap.String("pooja_date", booking.PoojaDate.Format("2006-01-02")),
			)
			return nil, ErrDuplicateDate
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("sevakartha_name", booking.SevakarthaName),
			zap.String("pooja_date", booking.PoojaDate.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking.CreatedAt = booking.CreatedAt.UTC()
	return booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, sevakartha_name, department, seva_type, pooja_date, day, month, year, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SevakarthaName,
		&booking.Department,
		&booking.SevaType,
		&booking.PoojaDate,
		&booking.Day,
		&booking.Month,
		&booking.Year,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByPoojaDate(ctx context.Context, poojaDate time.Time) (*entity.Booking, error) {
	query := `
		SELECT id, sevakartha_name, department, seva_type, pooja_date, day, month, year, status, created_at
		FROM bookings
		WHERE pooja_date = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, poojaDate).Scan(
		&booking.ID,
		&booking.SevakarthaName,
		&booking.Department,
		&booking.SevaType,
		&booking.PoojaDate,
		&booking.Day,
		&booking.Month,
		&booking.Year,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by pooja date",
			zap.Error(err),
			zap.String("pooja_date", poojaDate.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("find booking by pooja date %s: %w", poojaDate.Format("2006-01-02"), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, sevakartha_name, department, seva_type, pooja_date, day, month, year, status, created_at
		FROM bookings
		ORDER BY pooja_date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindByDateAndStatus(ctx context.Context, poojaDate time.Time, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT id, sevakartha_name, department, seva_type, pooja_date, day, month, year, status, created_at
		FROM bookings
		WHERE pooja_date = $1 AND status = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, poojaDate, status)
	if err != nil {
		r.log.Error("Failed to find bookings by date and status",
			zap.Error(err),
			zap.String("pooja_date", poojaDate.Format("2006-01-02")),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings for %s: %w", poojaDate.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.SevakarthaName,
			&booking.Department,
			&booking.SevaType,
			&booking.PoojaDate,
			&booking.Day,
			&booking.Month,
			&booking.Year,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}
