package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/response"

	"go.uber.org/zap"
)

// Fallback values for trains with no telemetry. Absence of a status row is
// a degraded view, never an error.
const (
	fallbackStation   = "En Route"
	fallbackStatus    = "On Time"
	fallbackTrainName = "Train Details Not Available"

	// Shown when departure/duration strings don't parse; the original
	// system displayed a fixed illustrative figure.
	fallbackProgress = 65
)

type StatusService interface {
	// ProjectStatus resolves a train by its exact display number and
	// projects the newest telemetry row into a status view, synthesizing
	// a default one when no telemetry exists.
	ProjectStatus(ctx context.Context, trainNumber string) (*response.StatusView, error)
}

type statusService struct {
	trainRepo  repository.TrainRepository
	statusRepo repository.StatusRepository
	now        func() time.Time
	log        *zap.Logger
}

func NewStatusService(trainRepo repository.TrainRepository, statusRepo repository.StatusRepository, log *zap.Logger) StatusService {
	return &statusService{
		trainRepo:  trainRepo,
		statusRepo: statusRepo,
		now:        time.Now,
		log:        log.With(zap.String("service", "status")),
	}
}

func (s *statusService) ProjectStatus(ctx context.Context, trainNumber string) (*response.StatusView, error) {
	train, err := s.trainRepo.FindByNumber(ctx, strings.TrimSpace(trainNumber))
	if err != nil {
		return nil, fmt.Errorf("resolve train: %w", err)
	}
	if train == nil {
		return nil, fmt.Errorf("train %s: %w", trainNumber, entity.ErrTrainNotFound)
	}

	status, err := s.statusRepo.FindLatestByTrainID(ctx, train.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch latest status: %w", err)
	}

	if status == nil {
		s.log.Info("No telemetry, synthesizing status view",
			zap.String("train_number", train.TrainNumber),
		)
		return &response.StatusView{
			Train: response.TrainDetails{
				TrainNumber: train.TrainNumber,
				TrainName:   fallbackTrainName,
				// Placeholders, matching what the feed-less view shows
				SourceStation:      "-",
				DestinationStation: "-",
			},
			CurrentStation:  fallbackStation,
			Status:          fallbackStatus,
			DelayMinutes:    0,
			ProgressPercent: fallbackProgress,
			Synthesized:     true,
		}, nil
	}

	view := &response.StatusView{
		Train:           response.TrainToDetails(train),
		CurrentStation:  fallbackStation,
		Status:          status.Status,
		ProgressPercent: estimateJourneyProgress(train.DepartureTime, train.Duration, s.now()),
		LastUpdated:     status.LastUpdated.Format(time.RFC3339),
	}
	if status.CurrentStation != nil && *status.CurrentStation != "" {
		view.CurrentStation = *status.CurrentStation
	}
	if status.DelayMinutes != nil {
		// Passed through unmodified; severity rendering is the caller's job
		view.DelayMinutes = *status.DelayMinutes
	}
	if status.ExpectedArrival != nil {
		view.ExpectedArrival = *status.ExpectedArrival
	}
	if status.ActualArrival != nil {
		view.ActualArrival = *status.ActualArrival
	}

	return view, nil
}

// estimateJourneyProgress derives a coarse percentage from how far past
// today's scheduled departure the clock is, against the published journey
// duration. Clamped to [5, 95] so an en-route train never reads 0 or 100.
// Unparseable schedule strings fall back to the fixed illustrative figure.
func estimateJourneyProgress(departure, duration string, now time.Time) int {
	dep, err := time.Parse("15:04", strings.TrimSpace(departure))
	if err != nil {
		return fallbackProgress
	}

	total := parseDurationLabel(duration)
	if total <= 0 {
		return fallbackProgress
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), dep.Hour(), dep.Minute(), 0, 0, now.Location())
	if start.After(now) {
		// Departed yesterday (overnight journeys)
		start = start.Add(-24 * time.Hour)
	}

	percent := int(now.Sub(start) * 100 / total)
	if percent < 5 {
		return 5
	}
	if percent > 95 {
		return 95
	}
	return percent
}

// parseDurationLabel reads schedule strings like "16h 10m" or "5h".
func parseDurationLabel(label string) time.Duration {
	var total time.Duration
	for _, field := range strings.Fields(label) {
		switch {
		case strings.HasSuffix(field, "h"):
			hours, err := strconv.Atoi(strings.TrimSuffix(field, "h"))
			if err != nil {
				return 0
			}
			total += time.Duration(hours) * time.Hour
		case strings.HasSuffix(field, "m"):
			minutes, err := strconv.Atoi(strings.TrimSuffix(field, "m"))
			if err != nil {
				return 0
			}
			total += time.Duration(minutes) * time.Minute
		default:
			return 0
		}
	}
	return total
}
