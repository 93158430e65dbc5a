package providers

import (
	"context"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// GeolocationProvider defines the interface for geolocation services
type GeolocationProvider interface {
	// Geocode converts an address or city name to coordinates
	Geocode(ctx context.Context, address string) (*GeocodedAddress, error)

	// ReverseGeocode converts coordinates to an address
	ReverseGeocode(ctx context.Context, point entities.GeoPoint) (*GeocodedAddress, error)

	// CalculateDistance calculates the distance between two points in kilometers
	CalculateDistance(ctx context.Context, from, to entities.GeoPoint) (float64, error)
}

// NearbyPlacesProvider fetches supplementary listings from an external place search.
type NearbyPlacesProvider interface {
	// FetchNearby returns places of the given kind within radiusMeters of origin.
	// Kinds the provider cannot search return an empty slice.
	FetchNearby(ctx context.Context, origin entities.GeoPoint, radiusMeters int, kind entities.Kind) ([]entities.Listing, error)
}

// GeocodedAddress represents a geocoded address
type GeocodedAddress struct {
	FormattedAddress string            `json:"formatted_address"`
	City             string            `json:"city,omitempty"`
	State            string            `json:"state,omitempty"`
	Country          string            `json:"country,omitempty"`
	Point            entities.GeoPoint `json:"point"`
}
