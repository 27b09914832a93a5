package adaptor

import (
	"net/http"

	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetMyBookings handles GET /api/user/bookings (protected)
func (h *UserHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetMyBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// SignOut handles POST /api/logout (protected)
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SignOut(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "sign out")
		return
	}

	utils.ResponseSuccess(w, "Signed out", nil)
}
