package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type coord struct{ lat, lng float64 }

var (
	cairo      = coord{30.0444, 31.2357}
	alexandria = coord{31.2001, 29.9187}
	mansoura   = coord{31.0409, 31.3785}
	tanta      = coord{30.7865, 31.0004}
)

func dist(a, b coord) float64 {
	return Haversine(a.lat, a.lng, b.lat, b.lng)
}

func TestHaversine_CairoToAlexandria(t *testing.T) {
	// No constant bias is added to the great-circle value.
	assert.InDelta(t, 180.0, dist(cairo, alexandria), 1.0)
}

func TestHaversine_Symmetry(t *testing.T) {
	points := []coord{cairo, alexandria, mansoura, tanta, {-33.86, 151.2}}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, dist(a, b), dist(b, a), 1e-9)
		}
	}
}

func TestHaversine_Identity(t *testing.T) {
	for _, p := range []coord{cairo, alexandria, {90, 0}, {0, -180}} {
		assert.InDelta(t, 0, dist(p, p), 1e-9)
	}
}

func TestHaversine_TriangleInequality(t *testing.T) {
	points := []coord{cairo, alexandria, mansoura, tanta}
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				assert.LessOrEqual(t, dist(a, c), dist(a, b)+dist(b, c)+1e-9)
			}
		}
	}
}

func TestHaversine_OneDegreeOfLatitude(t *testing.T) {
	assert.InDelta(t, 111.19, Haversine(0, 0, 1, 0), 0.01)
}
