package handlers

import (
	"net/http"
	"strings"

	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// DirectoryHandler serves the directory, emergency and search pages.
type DirectoryHandler struct {
	directory *services.DirectoryService
	origins   *services.OriginResolver
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory *services.DirectoryService, origins *services.OriginResolver) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, origins: origins}
}

type directoryResponse struct {
	*services.NearbyResult
	Origin entities.Origin `json:"origin"`
	Count  int             `json:"count"`
}

// ListDirectory handles GET /api/directory/{kind}
func (h *DirectoryHandler) ListDirectory(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	origin, err := h.resolveOrigin(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := entities.DirectoryFilter{
		Category:     strings.TrimSpace(q.Get("category")),
		Query:        strings.TrimSpace(q.Get("q")),
		Status:       strings.TrimSpace(q.Get("status")),
		Availability: strings.TrimSpace(q.Get("availability")),
		DonationType: strings.TrimSpace(q.Get("type")),
		BloodType:    strings.TrimSpace(q.Get("blood_type")),
	}

	result, err := h.directory.Nearby(r.Context(), services.NearbyQuery{
		Kind:     kind,
		Origin:   origin.Point,
		Criteria: filter.Criteria(kind),
	})
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, directoryResponse{
		NearbyResult: result,
		Origin:       origin,
		Count:        len(result.Listings),
	})
}

// Categories handles GET /api/directory/{kind}/categories
func (h *DirectoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	categories, err := h.directory.Categories(r.Context(), kind)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"kind":       kind,
		"categories": categories,
	})
}

// Emergency handles GET /api/emergency
func (h *DirectoryHandler) Emergency(w http.ResponseWriter, r *http.Request) {
	origin, err := h.resolveOrigin(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	result, err := h.directory.Emergency(r.Context(), origin.Point)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"origin":    origin,
		"emergency": result,
	})
}

// Search handles GET /api/search?q=
func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	origin, err := h.resolveOrigin(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	result, err := h.directory.Search(r.Context(), r.URL.Query().Get("q"), origin.Point)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *DirectoryHandler) resolveOrigin(r *http.Request) (entities.Origin, error) {
	lat, err := optionalFloat(r, "lat")
	if err != nil {
		return entities.Origin{}, err
	}
	lng, err := optionalFloat(r, "lng")
	if err != nil {
		return entities.Origin{}, err
	}
	return h.origins.Resolve(r.Context(), lat, lng, r.URL.Query().Get("city"))
}
