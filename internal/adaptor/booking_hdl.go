package adaptor

import (
	"encoding/json"
	"net/http"

	"railway-booking/internal/dto/request"
	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Ticket booked successfully", booking)
}

// GetBookingByPNR handles GET /api/bookings/{pnr} (public)
func (h *BookingHandler) GetBookingByPNR(w http.ResponseWriter, r *http.Request) {
	pnr := chi.URLParam(r, "pnr")
	if pnr == "" {
		utils.ResponseBadRequest(w, "PNR is required", nil)
		return
	}

	booking, err := h.service.GetBookingByPNR(r.Context(), pnr)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by PNR")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
