package services

import (
	"context"
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// OriginResolver turns request inputs into an Origin.
type OriginResolver struct {
	geocoder providers.GeolocationProvider
}

// NewOriginResolver creates a resolver. geocoder may be nil, in which case city names
// cannot be resolved.
func NewOriginResolver(geocoder providers.GeolocationProvider) *OriginResolver {
	return &OriginResolver{geocoder: geocoder}
}

// Resolve prefers explicit coordinates (granted), then a city name (manual). With
// neither the origin is denied. A city the geocoder cannot place is unavailable.
func (r *OriginResolver) Resolve(ctx context.Context, lat, lng *float64, city string) (entities.Origin, error) {
	if lat != nil || lng != nil {
		if lat == nil || lng == nil {
			return entities.Origin{}, apperrors.NewValidationError("lat and lng must be given together")
		}
		p, err := entities.NewGeoPoint(*lat, *lng)
		if err != nil {
			return entities.Origin{}, err
		}
		return entities.Origin{Point: &p, Status: entities.OriginGranted}, nil
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return entities.Origin{Status: entities.OriginDenied}, nil
	}
	if r.geocoder == nil {
		return entities.Origin{Status: entities.OriginUnavailable, City: city}, nil
	}

	addr, err := r.geocoder.Geocode(ctx, city)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return entities.Origin{Status: entities.OriginUnavailable, City: city}, nil
		}
		return entities.Origin{}, err
	}

	p := addr.Point
	name := addr.City
	if name == "" {
		name = city
	}
	return entities.Origin{Point: &p, Status: entities.OriginManual, City: name}, nil
}
