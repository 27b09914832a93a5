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

type StatusRepository interface {
	// FindLatestByTrainID returns (nil, nil) when no telemetry exists;
	// absence is not an error.
	FindLatestByTrainID(ctx context.Context, trainID uuid.UUID) (*entity.TrainStatus, error)
}

type statusRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatusRepository(db database.PgxIface, log *zap.Logger) StatusRepository {
	return &statusRepository{
		db:  db,
		log: log.With(zap.String("repository", "status")),
	}
}

func (r *statusRepository) FindLatestByTrainID(ctx context.Context, trainID uuid.UUID) (*entity.TrainStatus, error) {
	// Multiple rows may exist per train; the newest one wins.
	query := `
		SELECT id, train_id, current_station, expected_arrival, actual_arrival,
		       delay_minutes, status, last_updated
		FROM train_status
		WHERE train_id = $1
		ORDER BY last_updated DESC
		LIMIT 1
	`

	var status entity.TrainStatus
	err := r.db.QueryRow(ctx, query, trainID).Scan(
		&status.ID,
		&status.TrainID,
		&status.CurrentStation,
		&status.ExpectedArrival,
		&status.ActualArrival,
		&status.DelayMinutes,
		&status.Status,
		&status.LastUpdated,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest train status",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
		)
		return nil, fmt.Errorf("find latest status for train %s: %w", trainID.String(), err)
	}

	return &status, nil
}
