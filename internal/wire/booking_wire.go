package wire

import (
	"railway-booking/internal/adaptor"
	"railway-booking/internal/data/repository"
	"railway-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Purchase a ticket (authenticated users only)
		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})

	// ==================== PUBLIC ROUTES ====================

	// GET /api/bookings/{pnr} - PNR status lookup; the reservation code is
	// the public identifier, no session needed
	r.Get("/api/bookings/{pnr}", bookingHandler.GetBookingByPNR)
}
