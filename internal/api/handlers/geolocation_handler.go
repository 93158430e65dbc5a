package handlers

import (
	"net/http"
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// GeolocationHandler handles geocoding and the city selector.
type GeolocationHandler struct {
	provider providers.GeolocationProvider
	cities   func() []entities.City
}

// NewGeolocationHandler creates a new geolocation handler.
func NewGeolocationHandler(provider providers.GeolocationProvider, cities func() []entities.City) *GeolocationHandler {
	return &GeolocationHandler{provider: provider, cities: cities}
}

// Geocode handles GET /api/geocode?address=...
func (h *GeolocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		respondWithError(w, http.StatusBadRequest, "address parameter is required")
		return
	}

	result, err := h.provider.Geocode(r.Context(), address)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			respondWithAppError(w, r, err)
			return
		}
		respondWithError(w, http.StatusBadGateway, "failed to geocode address")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"address": address,
		"result":  result,
		"lat":     result.Point.Lat,
		"lng":     result.Point.Lng,
	})
}

// ReverseGeocode handles GET /api/reverse-geocode?lat=...&lng=...
func (h *GeolocationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, err := optionalFloat(r, "lat")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	lng, err := optionalFloat(r, "lng")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if lat == nil || lng == nil {
		respondWithError(w, http.StatusBadRequest, "lat and lng parameters are required")
		return
	}
	point, err := entities.NewGeoPoint(*lat, *lng)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	address, err := h.provider.ReverseGeocode(r.Context(), point)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to reverse geocode")
		return
	}
	respondWithJSON(w, http.StatusOK, address)
}

// Cities handles GET /api/cities
func (h *GeolocationHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities := []entities.City{}
	if h.cities != nil {
		cities = h.cities()
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
		"count":  len(cities),
	})
}
