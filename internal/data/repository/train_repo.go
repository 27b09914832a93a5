package repository

import (
	"context"
	"fmt"

	"railway-booking/internal/data/entity"
	"railway-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TrainRepository owns the route-matching policy: case-insensitive
// substring on the free-text station names, each filter skipped when its
// query text is empty. Swapping to exact station-code matching later only
// touches FindByRoute.
type TrainRepository interface {
	FindByRoute(ctx context.Context, source, destination string) ([]*entity.Train, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error)
	FindByNumber(ctx context.Context, trainNumber string) (*entity.Train, error)
}

type trainRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrainRepository(db database.PgxIface, log *zap.Logger) TrainRepository {
	return &trainRepository{
		db:  db,
		log: log.With(zap.String("repository", "train")),
	}
}

const trainColumns = `id, train_number, train_name, source_station, destination_station,
	       departure_time, arrival_time, duration, base_fare, available_classes,
	       total_seats, created_at, updated_at`

func (r *trainRepository) FindByRoute(ctx context.Context, source, destination string) ([]*entity.Train, error) {
	// Empty pattern '%%' matches every row, so blank query text skips
	// that filter. ORDER BY keeps results stable across identical calls.
	query := `
		SELECT ` + trainColumns + `
		FROM trains
		WHERE source_station ILIKE '%' || $1 || '%'
		  AND destination_station ILIKE '%' || $2 || '%'
		ORDER BY train_number
	`

	rows, err := r.db.Query(ctx, query, source, destination)
	if err != nil {
		r.log.Error("Failed to find trains by route",
			zap.Error(err),
			zap.String("source", source),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("find trains by route %q -> %q: %w", source, destination, err)
	}
	defer rows.Close()

	var trains []*entity.Train
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			r.log.Error("Failed to scan train row", zap.Error(err))
			return nil, fmt.Errorf("scan train row: %w", err)
		}
		trains = append(trains, train)
	}

	return trains, rows.Err()
}

func (r *trainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE id = $1`

	train, err := scanTrain(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find train by ID",
			zap.Error(err),
			zap.String("train_id", id.String()),
		)
		return nil, fmt.Errorf("find train by ID %s: %w", id.String(), err)
	}

	return train, nil
}

func (r *trainRepository) FindByNumber(ctx context.Context, trainNumber string) (*entity.Train, error) {
	// Exact match, unlike the route search
	query := `SELECT ` + trainColumns + ` FROM trains WHERE train_number = $1`

	train, err := scanTrain(r.db.QueryRow(ctx, query, trainNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find train by number",
			zap.Error(err),
			zap.String("train_number", trainNumber),
		)
		return nil, fmt.Errorf("find train by number %s: %w", trainNumber, err)
	}

	return train, nil
}

func scanTrain(row pgx.Row) (*entity.Train, error) {
	var train entity.Train
	err := row.Scan(
		&train.ID,
		&train.TrainNumber,
		&train.TrainName,
		&train.SourceStation,
		&train.DestinationStation,
		&train.DepartureTime,
		&train.ArrivalTime,
		&train.Duration,
		&train.BaseFare,
		&train.AvailableClasses,
		&train.TotalSeats,
		&train.CreatedAt,
		&train.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &train, nil
}
