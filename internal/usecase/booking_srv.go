package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/request"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking runs the whole purchase: authenticate, validate the
	// passenger form, price, generate the reservation code, allocate a
	// seat and persist. All-or-nothing: no failure leaves a partial
	// booking behind.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// GetBookingByPNR is the public reservation-code lookup.
	GetBookingByPNR(ctx context.Context, pnr string) (*response.BookingResponse, error)
}

type bookingService struct {
	trainRepo   repository.TrainRepository
	bookingRepo repository.BookingRepository
	fares       *FareCalculator
	seats       *SeatAllocator
	maxAttempts int

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand

	log *zap.Logger
}

func NewBookingService(
	trainRepo repository.TrainRepository,
	bookingRepo repository.BookingRepository,
	fares *FareCalculator,
	seats *SeatAllocator,
	maxAttempts int,
	rnd *rand.Rand,
	log *zap.Logger,
) BookingService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &bookingService{
		trainRepo:   trainRepo,
		bookingRepo: bookingRepo,
		fares:       fares,
		seats:       seats,
		maxAttempts: maxAttempts,
		rnd:         rnd,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Identity is injected through the request context, never read from
	// ambient global state. No user means the booking is never attempted.
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, entity.ErrAuthenticationRequired
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	trainID, err := utils.ParseUUID(req.TrainID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid train ID %q", entity.ErrValidation, req.TrainID)
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid travel date %q", entity.ErrValidation, req.TravelDate)
	}

	train, err := s.trainRepo.FindByID(ctx, trainID)
	if err != nil {
		return nil, fmt.Errorf("resolve train: %w", err)
	}
	if train == nil {
		return nil, fmt.Errorf("train %s: %w", req.TrainID, entity.ErrTrainNotFound)
	}

	class := entity.TravelClass(req.Class)
	if !train.AvailableClasses.Has(class) {
		return nil, fmt.Errorf("%w: class %s is not offered on train %s",
			entity.ErrValidation, class, train.TrainNumber)
	}

	// Fare is computed once here and frozen on the booking row.
	fare, err := s.fares.Fare(train.BaseFare, class)
	if err != nil {
		return nil, err
	}

	// Reservation-code generation and insert are two steps; the unique
	// index on bookings.pnr arbitrates, and a collision is retried with a
	// fresh code instead of surfacing to the caller.
	var booking *entity.Booking
	for attempt := 1; ; attempt++ {
		booking = &entity.Booking{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: time.Now(),
			},
			PNR:             s.nextPNR(),
			UserID:          userID,
			TrainID:         train.ID,
			PassengerName:   req.PassengerName,
			PassengerAge:    req.PassengerAge,
			PassengerGender: req.PassengerGender,
			TravelDate:      travelDate,
			Class:           class,
			SeatNumber:      s.seats.Allocate(class),
			FarePaid:        fare,
			Status:          entity.BookingStatusConfirmed,
		}

		err = s.bookingRepo.Create(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, entity.ErrPNRConflict) && attempt < s.maxAttempts {
			s.log.Warn("PNR collision, retrying with fresh code",
				zap.Int("attempt", attempt),
				zap.String("pnr", booking.PNR),
			)
			continue
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("train_number", train.TrainNumber),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("pnr", booking.PNR),
		zap.String("user_id", userID.String()),
		zap.String("train_number", train.TrainNumber),
		zap.String("class", string(class)),
		zap.String("seat", booking.SeatNumber),
		zap.Float64("fare_paid", fare),
	)

	return response.BookingToResponse(booking, train), nil
}

func (s *bookingService) GetBookingByPNR(ctx context.Context, pnr string) (*response.BookingResponse, error) {
	if len(pnr) != utils.PNRLength {
		return nil, fmt.Errorf("%w: PNR must be exactly %d characters", entity.ErrValidation, utils.PNRLength)
	}

	booking, err := s.bookingRepo.FindByPNR(ctx, pnr)
	if err != nil {
		return nil, fmt.Errorf("lookup PNR: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("PNR %s: %w", pnr, entity.ErrBookingNotFound)
	}

	train, err := s.trainRepo.FindByID(ctx, booking.TrainID)
	if err != nil {
		return nil, fmt.Errorf("resolve booked train: %w", err)
	}

	return response.BookingToResponse(booking, train), nil
}

func (s *bookingService) nextPNR() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.GeneratePNR(s.rnd)
}
