package wire

import (
	"net/http"

	"railway-booking/internal/adaptor"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/usecase"
	"railway-booking/pkg/middleware"
	"railway-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireTrain(r, handler.Train, handler.Status, handler.Station)
	wireBooking(r, handler.Booking, repo, logger)
	wireUser(r, handler.User, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
