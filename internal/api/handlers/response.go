package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an AppError type to its HTTP status. Anything else is a 500.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrorTypeValidation:
		status = http.StatusBadRequest
	case apperrors.ErrorTypeConflict:
		status = http.StatusConflict
	case apperrors.ErrorTypeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.ErrorTypeExternal:
		status = http.StatusBadGateway
	case apperrors.ErrorTypeUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status >= 500 {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	respondWithError(w, status, appErr.Message)
}

// optionalFloat parses a query parameter; an absent parameter is nil.
func optionalFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return &v, nil
}

// pathKind reads the {kind} path value, accepting plural forms.
func pathKind(r *http.Request) (entities.Kind, error) {
	raw := r.PathValue("kind")
	kind, ok := entities.ParseKind(raw)
	if !ok {
		return "", apperrors.NewValidationError("unknown directory " + strings.TrimSpace(raw))
	}
	return kind, nil
}
