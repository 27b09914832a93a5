package wire

import (
	"railway-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrain(
	r chi.Router,
	trainHandler *adaptor.TrainHandler,
	statusHandler *adaptor.StatusHandler,
	stationHandler *adaptor.StationHandler,
) {
	// ==================== PUBLIC ROUTES ====================

	// GET /api/trains - Search trains by route (offers with per-class fares)
	r.Get("/api/trains", trainHandler.SearchTrains)

	// GET /api/trains/{number}/status - Live running status
	r.Get("/api/trains/{number}/status", statusHandler.GetTrainStatus)

	// GET /api/stations - Station directory autocomplete
	r.Get("/api/stations", stationHandler.SearchStations)
}
