package wire

import (
	"railway-booking/internal/adaptor"
	"railway-booking/internal/data/repository"
	"railway-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/user/profile - Account details for the dashboard
		r.Get("/api/user/profile", userHandler.GetProfile)

		// GET /api/user/bookings - Booking history, newest first
		r.Get("/api/user/bookings", userHandler.GetMyBookings)

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", userHandler.SignOut)
	})
}
