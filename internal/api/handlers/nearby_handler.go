package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

// NearbyHospitalsHandler is a thin Places passthrough for clients that merge on their own.
type NearbyHospitalsHandler struct {
	provider      providers.NearbyPlacesProvider
	defaultRadius int
}

// NewNearbyHospitalsHandler creates the handler. provider may be nil when no key is configured.
func NewNearbyHospitalsHandler(provider providers.NearbyPlacesProvider, defaultRadius int) *NearbyHospitalsHandler {
	if defaultRadius <= 0 {
		defaultRadius = 5000
	}
	return &NearbyHospitalsHandler{provider: provider, defaultRadius: defaultRadius}
}

type nearbyHospitalsRequest struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Radius int      `json:"radius"`
}

type nearbyHospital struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	NameAr    string   `json:"name_ar"`
	Address   string   `json:"address"`
	AddressAr string   `json:"address_ar"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Phone     string   `json:"phone"`
	Ambulance bool     `json:"ambulance"`
	Status    string   `json:"status"`
	Source    string   `json:"source"`
	Rating    *float64 `json:"rating,omitempty"`
}

// NearbyHospitals handles POST /api/nearby-hospitals. Upstream failures are reported
// in the body with status 200 so callers can keep their verified data.
func (h *NearbyHospitalsHandler) NearbyHospitals(w http.ResponseWriter, r *http.Request) {
	var req nearbyHospitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		respondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	origin, err := entities.NewGeoPoint(*req.Lat, *req.Lng)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if req.Radius <= 0 {
		req.Radius = h.defaultRadius
	}

	if h.provider == nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"hospitals": []nearbyHospital{},
			"error":     "Google Maps API key not configured",
		})
		return
	}

	listings, err := h.provider.FetchNearby(r.Context(), origin, req.Radius, entities.KindHospital)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("nearby hospitals lookup failed")
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"hospitals": []nearbyHospital{},
			"error":     err.Error(),
		})
		return
	}

	hospitals := make([]nearbyHospital, 0, len(listings))
	for _, l := range listings {
		if l.Position == nil {
			continue
		}
		hospitals = append(hospitals, toNearbyHospital(l))
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"hospitals": hospitals})
}

func toNearbyHospital(l entities.Listing) nearbyHospital {
	out := nearbyHospital{
		ID:        l.ID,
		Name:      l.Name,
		NameAr:    l.NameLocalized,
		Address:   l.Attr(entities.AttrAddress),
		AddressAr: l.Attr(entities.AttrAddressAr),
		Lat:       l.Position.Lat,
		Lng:       l.Position.Lng,
		Phone:     l.Attr(entities.AttrPhone),
		Status:    l.Status,
		Source:    "google_maps",
	}
	if out.NameAr == "" {
		out.NameAr = l.Name
	}
	if rating, ok := parseRating(l.Attr(entities.AttrRating)); ok {
		out.Rating = &rating
	}
	return out
}

func parseRating(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}
