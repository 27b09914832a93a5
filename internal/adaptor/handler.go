package adaptor

import (
	"errors"
	"net/http"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Train   *TrainHandler
	Booking *BookingHandler
	Status  *StatusHandler
	User    *UserHandler
	Station *StationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Train:   NewTrainHandler(service.Train, log),
		Booking: NewBookingHandler(service.Booking, log),
		Status:  NewStatusHandler(service.Status, log),
		User:    NewUserHandler(service.User, log),
		Station: NewStationHandler(log),
	}
}

// handleServiceError maps the engine's failure taxonomy to HTTP. All
// failures stop at this boundary as a single user-facing message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrAuthenticationRequired):
		log.Warn(operation+" failed - authentication required", zap.Error(err))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrTrainNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrProfileNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong, please try again")
	}
}
