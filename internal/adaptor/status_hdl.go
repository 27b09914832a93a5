package adaptor

import (
	"net/http"

	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StatusHandler struct {
	service usecase.StatusService
	log     *zap.Logger
}

func NewStatusHandler(service usecase.StatusService, log *zap.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		log:     log.With(zap.String("handler", "status")),
	}
}

// GetTrainStatus handles GET /api/trains/{number}/status (public).
// Clients poll this on a fixed interval; each call is an independent
// point lookup.
func (h *StatusHandler) GetTrainStatus(w http.ResponseWriter, r *http.Request) {
	trainNumber := chi.URLParam(r, "number")
	if trainNumber == "" {
		utils.ResponseBadRequest(w, "Train number is required", nil)
		return
	}

	view, err := h.service.ProjectStatus(r.Context(), trainNumber)
	if err != nil {
		handleServiceError(w, h.log, err, "get train status")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}
