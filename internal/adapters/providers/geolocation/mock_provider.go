package geolocation

import (
	"context"
	"fmt"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// MockGeolocationProvider resolves the built-in city table and fabricates nearby places.
// It is used in development and tests when no Google key is configured.
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() *MockGeolocationProvider {
	return &MockGeolocationProvider{}
}

// Geocode resolves a city id or name from the built-in table.
func (m *MockGeolocationProvider) Geocode(_ context.Context, address string) (*providers.GeocodedAddress, error) {
	city, ok := LookupCity(address)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("unknown city %q", address))
	}
	return &providers.GeocodedAddress{
		FormattedAddress: fmt.Sprintf("%s, %s, Egypt", city.Name, city.Governorate),
		City:             city.Name,
		State:            city.Governorate,
		Country:          "Egypt",
		Point:            city.Point(),
	}, nil
}

// ReverseGeocode returns the nearest built-in city.
func (m *MockGeolocationProvider) ReverseGeocode(_ context.Context, point entities.GeoPoint) (*providers.GeocodedAddress, error) {
	nearest := egyptCities[0]
	best := point.DistanceTo(nearest.Point())
	for _, c := range egyptCities[1:] {
		if d := point.DistanceTo(c.Point()); d < best {
			nearest, best = c, d
		}
	}
	return &providers.GeocodedAddress{
		FormattedAddress: fmt.Sprintf("%f, %f", point.Lat, point.Lng),
		City:             nearest.Name,
		State:            nearest.Governorate,
		Country:          "Egypt",
		Point:            point,
	}, nil
}

// CalculateDistance returns the haversine distance in kilometers.
func (m *MockGeolocationProvider) CalculateDistance(_ context.Context, from, to entities.GeoPoint) (float64, error) {
	return from.DistanceTo(to), nil
}

// FetchNearby returns two fabricated places around the origin.
func (m *MockGeolocationProvider) FetchNearby(_ context.Context, origin entities.GeoPoint, _ int, kind entities.Kind) ([]entities.Listing, error) {
	if _, ok := placeTypes[kind]; !ok {
		return []entities.Listing{}, nil
	}
	return []entities.Listing{
		{
			ID:           SupplementaryIDPrefix + "mock-1",
			Kind:         kind,
			Name:         fmt.Sprintf("Mock %s 1", kind),
			Position:     &entities.GeoPoint{Lat: origin.Lat + 0.01, Lng: origin.Lng + 0.01},
			Status:       "available",
			CategoryTags: []string{placeTypes[kind]},
			Source:       entities.SourceSupplementary,
		},
		{
			ID:           SupplementaryIDPrefix + "mock-2",
			Kind:         kind,
			Name:         fmt.Sprintf("Mock %s 2", kind),
			Position:     &entities.GeoPoint{Lat: origin.Lat - 0.01, Lng: origin.Lng - 0.01},
			Status:       "busy",
			CategoryTags: []string{placeTypes[kind]},
			Source:       entities.SourceSupplementary,
		},
	}, nil
}
