package usecase

import (
	"context"
	"fmt"
	"strings"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/request"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type TrainService interface {
	// Search builds offers for a route query. Zero matches is a valid,
	// non-error outcome and yields an empty slice.
	Search(ctx context.Context, req *request.SearchTrainsRequest) ([]response.OfferResponse, error)
}

type trainService struct {
	trainRepo repository.TrainRepository
	fares     *FareCalculator
	log       *zap.Logger
}

func NewTrainService(trainRepo repository.TrainRepository, fares *FareCalculator, log *zap.Logger) TrainService {
	return &trainService{
		trainRepo: trainRepo,
		fares:     fares,
		log:       log.With(zap.String("service", "train")),
	}
}

func (s *trainService) Search(ctx context.Context, req *request.SearchTrainsRequest) ([]response.OfferResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	source := strings.TrimSpace(req.Source)
	destination := strings.TrimSpace(req.Destination)

	trains, err := s.trainRepo.FindByRoute(ctx, source, destination)
	if err != nil {
		return nil, fmt.Errorf("search trains: %w", err)
	}

	offers := make([]response.OfferResponse, 0, len(trains))
	for _, train := range trains {
		offer := response.OfferResponse{
			ID:                 train.ID.String(),
			TrainNumber:        train.TrainNumber,
			TrainName:          train.TrainName,
			SourceStation:      train.SourceStation,
			DestinationStation: train.DestinationStation,
			DepartureTime:      train.DepartureTime,
			ArrivalTime:        train.ArrivalTime,
			Duration:           train.Duration,
			BaseFare:           train.BaseFare,
			TravelDate:         req.Date, // carried for display, never a filter
		}

		for _, class := range train.AvailableClasses.List() {
			fare, err := s.fares.Fare(train.BaseFare, class)
			if err != nil {
				// Known classes always price; only an unknown tag under
				// the reject policy errors, and List never yields one.
				return nil, fmt.Errorf("price class %s: %w", class, err)
			}
			offer.ClassFares = append(offer.ClassFares, response.ClassFare{Class: class, Fare: fare})
		}

		offers = append(offers, offer)
	}

	s.log.Info("Train search completed",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int("count", len(offers)),
	)

	return offers, nil
}
