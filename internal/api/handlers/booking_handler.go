package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/afandyna/ser-Health/internal/application/services"
)

// BookingHandler handles doctor bookings.
type BookingHandler struct {
	bookings *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Book handles POST /api/bookings
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req services.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.bookings.Book(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, booking)
}

// Cancel handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.Cancel(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ListByDoctor handles GET /api/doctors/{id}/bookings
func (h *BookingHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListByDoctor(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
