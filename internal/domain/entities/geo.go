package entities

import (
	"fmt"
	"math"

	apperrors "github.com/afandyna/ser-Health/pkg/errors"
	"github.com/afandyna/ser-Health/pkg/geo"
)

// GeoPoint represents geographical coordinates in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGeoPoint builds a validated point.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{Lat: lat, Lng: lng}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Validate rejects NaN and out-of-range coordinates.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return apperrors.NewValidationError("coordinates must be numbers")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return apperrors.NewValidationError(fmt.Sprintf("latitude %f out of range [-90, 90]", p.Lat))
	}
	if p.Lng < -180 || p.Lng > 180 {
		return apperrors.NewValidationError(fmt.Sprintf("longitude %f out of range [-180, 180]", p.Lng))
	}
	return nil
}

// DistanceTo returns the haversine distance to q in kilometers.
// Callers validate points first.
func (p GeoPoint) DistanceTo(q GeoPoint) float64 {
	return geo.Haversine(p.Lat, p.Lng, q.Lat, q.Lng)
}

// OriginStatus mirrors the states of a caller's location request.
type OriginStatus string

const (
	OriginGranted     OriginStatus = "granted"
	OriginDenied      OriginStatus = "denied"
	OriginUnavailable OriginStatus = "unavailable"
	OriginManual      OriginStatus = "manual"
)

// Origin is the resolved caller position. Point is nil unless Status is granted or manual.
type Origin struct {
	Point  *GeoPoint    `json:"point,omitempty"`
	Status OriginStatus `json:"status"`
	City   string       `json:"city,omitempty"`
}

// City is a selectable fallback location when device location is denied.
type City struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameAr        string  `json:"name_ar"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Governorate   string  `json:"governorate"`
	GovernorateAr string  `json:"governorate_ar"`
}

// Point returns the city centre.
func (c City) Point() GeoPoint {
	return GeoPoint{Lat: c.Lat, Lng: c.Lng}
}
