package adaptor

import (
	"net/http"

	"railway-booking/internal/dto/request"
	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type TrainHandler struct {
	service usecase.TrainService
	log     *zap.Logger
}

func NewTrainHandler(service usecase.TrainService, log *zap.Logger) *TrainHandler {
	return &TrainHandler{
		service: service,
		log:     log.With(zap.String("handler", "train")),
	}
}

// SearchTrains handles GET /api/trains?source=&destination=&date= (public)
func (h *TrainHandler) SearchTrains(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SearchTrainsRequest{
		Source:      query.Get("source"),
		Destination: query.Get("destination"),
		Date:        query.Get("date"),
	}

	offers, err := h.service.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search trains")
		return
	}

	utils.ResponseSuccess(w, "success", offers)
}
