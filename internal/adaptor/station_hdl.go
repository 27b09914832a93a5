package adaptor

import (
	"net/http"
	"strconv"

	"railway-booking/pkg/stations"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

const defaultStationLimit = 8

type StationHandler struct {
	log *zap.Logger
}

func NewStationHandler(log *zap.Logger) *StationHandler {
	return &StationHandler{
		log: log.With(zap.String("handler", "station")),
	}
}

// SearchStations handles GET /api/stations?q=&limit= (public), backing the
// search-form autocomplete.
func (h *StationHandler) SearchStations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := defaultStationLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results := stations.Search(query.Get("q"), limit)
	utils.ResponseSuccess(w, "success", results)
}
