package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/providers/geolocation"
	"github.com/afandyna/ser-Health/internal/adapters/sample"
	"github.com/afandyna/ser-Health/internal/api/handlers"
	"github.com/afandyna/ser-Health/internal/application/services"
)

func newTestHandler() http.Handler {
	geo := geolocation.NewMockGeolocationProvider()
	chain := services.NewFallbackChain(nil, sample.NewSource())
	directory := services.NewDirectoryService(chain, sample.NewSource(), geo, nil, nil, services.DirectoryOptions{})

	router := NewRouter(
		handlers.NewDirectoryHandler(directory, services.NewOriginResolver(geo)),
		handlers.NewNearbyHospitalsHandler(geo, 5000),
		handlers.NewGeolocationHandler(geo, geolocation.Cities),
		nil,
		nil,
		nil,
		[]string{"*"},
		nil,
	)
	return router.SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_SampleDirectory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/directory/doctors?city=giza", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"source":"sample"`)
}

func TestRouter_OptionalRoutesDisabled(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors/d1/bookings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_GraphQLMounted(t *testing.T) {
	geo := geolocation.NewMockGeolocationProvider()
	chain := services.NewFallbackChain(nil, sample.NewSource())
	directory := services.NewDirectoryService(chain, sample.NewSource(), geo, nil, nil, services.DirectoryOptions{})
	router := NewRouter(
		handlers.NewDirectoryHandler(directory, services.NewOriginResolver(geo)),
		handlers.NewNearbyHospitalsHandler(geo, 5000),
		handlers.NewGeolocationHandler(geo, geolocation.Cities),
		nil, nil, nil, []string{"*"}, nil,
	).WithGraphQL(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	router.SetupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
