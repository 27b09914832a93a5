package usecase

import (
	"context"
	"fmt"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context) (*response.ProfileResponse, error)
	// GetMyBookings returns the caller's bookings, newest first.
	GetMyBookings(ctx context.Context) ([]response.BookingResponse, error)
	SignOut(ctx context.Context) error
}

type userService struct {
	profileRepo repository.ProfileRepository
	bookingRepo repository.BookingRepository
	trainRepo   repository.TrainRepository
	sessionRepo repository.SessionRepository
	log         *zap.Logger
}

func NewUserService(
	profileRepo repository.ProfileRepository,
	bookingRepo repository.BookingRepository,
	trainRepo   repository.TrainRepository,
	sessionRepo repository.SessionRepository,
	log *zap.Logger,
) UserService {
	return &userService{
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
		trainRepo:   trainRepo,
		sessionRepo: sessionRepo,
		log:         log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context) (*response.ProfileResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, entity.ErrAuthenticationRequired
	}

	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), entity.ErrProfileNotFound)
	}

	return response.ProfileToResponse(profile), nil
}

func (s *userService) GetMyBookings(ctx context.Context) ([]response.BookingResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, entity.ErrAuthenticationRequired
	}

	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	// One train serves many bookings; resolve each train once
	trains := make(map[uuid.UUID]*entity.Train)
	results := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		train, cached := trains[booking.TrainID]
		if !cached {
			train, err = s.trainRepo.FindByID(ctx, booking.TrainID)
			if err != nil {
				return nil, fmt.Errorf("resolve booked train: %w", err)
			}
			trains[booking.TrainID] = train
		}
		results = append(results, *response.BookingToResponse(booking, train))
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func (s *userService) SignOut(ctx context.Context) error {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return entity.ErrAuthenticationRequired
	}

	if err := s.sessionRepo.Revoke(ctx, token); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	return nil
}
