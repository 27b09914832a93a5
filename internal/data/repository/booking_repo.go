package repository

import (
	"context"
	"errors"
	"fmt"

	"railway-booking/internal/data/entity"
	"railway-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create returns entity.ErrPNRConflict when the reservation code is
	// already taken, so the caller can regenerate and retry.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
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

const bookingColumns = `id, pnr, user_id, train_id, passenger_name, passenger_age,
	       passenger_gender, travel_date, class, seat_number, fare_paid,
	       booking_status, created_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, pnr, user_id, train_id, passenger_name, passenger_age,
		                      passenger_gender, travel_date, class, seat_number, fare_paid,
		                      booking_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.PNR,
		booking.UserID,
		booking.TrainID,
		booking.PassengerName,
		booking.PassengerAge,
		booking.PassengerGender,
		booking.TravelDate,
		booking.Class,
		booking.SeatNumber,
		booking.FarePaid,
		booking.Status,
		booking.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique index on bookings.pnr is the single arbiter of the
			// code-uniqueness invariant.
			r.log.Warn("PNR collision on insert", zap.String("pnr", booking.PNR))
			return fmt.Errorf("insert booking %s: %w", booking.PNR, entity.ErrPNRConflict)
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.PNR, err)
	}

	return nil
}

func (r *bookingRepository) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, pnr))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by PNR",
			zap.Error(err),
			zap.String("pnr", pnr),
		)
		return nil, fmt.Errorf("find booking by PNR %s: %w", pnr, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.PNR,
		&booking.UserID,
		&booking.TrainID,
		&booking.PassengerName,
		&booking.PassengerAge,
		&booking.PassengerGender,
		&booking.TravelDate,
		&booking.Class,
		&booking.SeatNumber,
		&booking.FarePaid,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
