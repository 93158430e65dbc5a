package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// RegistryHandler handles listing registration and admin review.
type RegistryHandler struct {
	registry *services.RegistryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registry *services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

type registerRequest struct {
	Name         string            `json:"name"`
	NameAr       string            `json:"name_ar"`
	Lat          *float64          `json:"lat"`
	Lng          *float64          `json:"lng"`
	CategoryTags []string          `json:"category_tags"`
	Status       string            `json:"status"`
	Availability string            `json:"availability"`
	Attributes   map[string]string `json:"attributes"`
}

// Register handles POST /api/listings/{kind}
func (h *RegistryHandler) Register(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing := entities.Listing{
		Kind:          kind,
		Name:          req.Name,
		NameLocalized: req.NameAr,
		CategoryTags:  req.CategoryTags,
		Status:        req.Status,
		Availability:  entities.Availability(req.Availability),
		Attributes:    req.Attributes,
	}
	if req.Lat != nil && req.Lng != nil {
		listing.Position = &entities.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}
	}

	created, err := h.registry.Register(r.Context(), listing)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// Pending handles GET /api/admin/listings/{kind}/pending
func (h *RegistryHandler) Pending(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	listings, err := h.registry.Pending(r.Context(), kind)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}

// Approve handles POST /api/admin/listings/{kind}/{id}/approve
func (h *RegistryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	listing, err := h.registry.Approve(r.Context(), kind, r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listing)
}

// Reject handles DELETE /api/admin/listings/{kind}/{id}
func (h *RegistryHandler) Reject(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := h.registry.Reject(r.Context(), kind, r.PathValue("id")); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
