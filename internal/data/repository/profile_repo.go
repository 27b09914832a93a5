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

type ProfileRepository interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) FindByID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, full_name, email, phone, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile %s: %w", userID.String(), err)
	}

	return &profile, nil
}
