package geolocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
)

const (
	googleGeocodeURL       = "https://maps.googleapis.com/maps/api/geocode/json"
	googlePlacesTextURL    = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	googlePlacesNearbyURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultGeocodeCacheTTL = 60 * 60 * 24 * 30
	defaultReverseCacheTTL = 60 * 60 * 24 * 30
	defaultHTTPTimeout     = 8 * time.Second
	defaultRegion          = "eg"

	// SupplementaryIDPrefix marks listings that came from the places search.
	SupplementaryIDPrefix = "gm_"
)

// placeTypes maps directory kinds to Places API types. Kinds without an entry are not searched.
var placeTypes = map[entities.Kind]string{
	entities.KindHospital: "hospital",
	entities.KindDoctor:   "doctor",
	entities.KindPharmacy: "pharmacy",
	entities.KindLab:      "health",
}

// GoogleOptions overrides endpoints and transport (used for tests).
type GoogleOptions struct {
	GeocodeURL string
	PlacesURL  string
	NearbyURL  string
	Region     string
	HTTPClient *http.Client
}

// GoogleGeolocationProvider implements geocoding and nearby place search using Google Maps APIs.
type GoogleGeolocationProvider struct {
	apiKey     string
	httpClient *http.Client
	cache      providers.CacheProvider
	geocodeURL string
	placesURL  string
	nearbyURL  string
	region     string
}

// NewGoogleGeolocationProvider creates a new Google geolocation provider.
func NewGoogleGeolocationProvider(apiKey string, cache providers.CacheProvider) *GoogleGeolocationProvider {
	return NewGoogleGeolocationProviderWithOptions(apiKey, cache, GoogleOptions{})
}

// NewGoogleGeolocationProviderWithOptions allows overriding endpoints and the HTTP client.
func NewGoogleGeolocationProviderWithOptions(apiKey string, cache providers.CacheProvider, opts GoogleOptions) *GoogleGeolocationProvider {
	if strings.TrimSpace(opts.GeocodeURL) == "" {
		opts.GeocodeURL = googleGeocodeURL
	}
	if strings.TrimSpace(opts.NearbyURL) == "" {
		opts.NearbyURL = googlePlacesNearbyURL
	}
	if strings.TrimSpace(opts.PlacesURL) == "" && opts.GeocodeURL == googleGeocodeURL {
		opts.PlacesURL = googlePlacesTextURL
	}
	if opts.Region == "" {
		opts.Region = defaultRegion
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleGeolocationProvider{
		apiKey:     apiKey,
		httpClient: opts.HTTPClient,
		cache:      cache,
		geocodeURL: opts.GeocodeURL,
		placesURL:  opts.PlacesURL,
		nearbyURL:  opts.NearbyURL,
		region:     opts.Region,
	}
}

// Geocode converts an address or place name to coordinates.
func (g *GoogleGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.GeocodedAddress, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("address is required")
	}

	cacheKey := "geo:v3:geocode:" + hashKey(strings.ToLower(trimmed))
	if addr := g.cached(ctx, cacheKey); addr != nil {
		return addr, nil
	}

	if g.placesURL != "" {
		if addr, err := g.searchPlaceAddress(ctx, trimmed); err == nil && addr != nil {
			g.store(ctx, cacheKey, addr, defaultGeocodeCacheTTL)
			return addr, nil
		}
	}

	resp, err := g.doGeocodeRequest(ctx, url.Values{"address": []string{trimmed}})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no results for address")
	}

	addr := toGeocodedAddress(resp.Results[0])
	g.store(ctx, cacheKey, addr, defaultGeocodeCacheTTL)
	return addr, nil
}

// ReverseGeocode converts coordinates to an address.
func (g *GoogleGeolocationProvider) ReverseGeocode(ctx context.Context, point entities.GeoPoint) (*providers.GeocodedAddress, error) {
	cacheKey := "geo:v3:reverse:" + hashKey(fmt.Sprintf("%.5f,%.5f", point.Lat, point.Lng))
	if addr := g.cached(ctx, cacheKey); addr != nil {
		return addr, nil
	}

	resp, err := g.doGeocodeRequest(ctx, url.Values{"latlng": []string{fmt.Sprintf("%f,%f", point.Lat, point.Lng)}})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no results for coordinates")
	}

	addr := toGeocodedAddress(resp.Results[0])
	g.store(ctx, cacheKey, addr, defaultReverseCacheTTL)
	return addr, nil
}

// CalculateDistance returns the haversine distance in kilometers.
func (g *GoogleGeolocationProvider) CalculateDistance(_ context.Context, from, to entities.GeoPoint) (float64, error) {
	return from.DistanceTo(to), nil
}

// FetchNearby runs a Places nearby search and converts results to supplementary listings.
func (g *GoogleGeolocationProvider) FetchNearby(ctx context.Context, origin entities.GeoPoint, radiusMeters int, kind entities.Kind) ([]entities.Listing, error) {
	placeType, ok := placeTypes[kind]
	if !ok {
		return []entities.Listing{}, nil
	}
	if g.apiKey == "" {
		return nil, fmt.Errorf("google maps api key is required")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", placeType)
	params.Set("key", g.apiKey)

	var payload googlePlacesNearbyResponse
	if err := g.getJSON(ctx, g.nearbyURL, params, &payload); err != nil {
		return nil, fmt.Errorf("places nearby search: %w", err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("places nearby search failed: %s - %s", payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("places nearby search failed: %s", payload.Status)
	}

	listings := make([]entities.Listing, 0, len(payload.Results))
	for _, place := range payload.Results {
		if l, ok := placeToListing(place, kind); ok {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

func placeToListing(place googlePlacesNearbyResult, kind entities.Kind) (entities.Listing, bool) {
	loc := place.Geometry.Location
	if loc == nil {
		return entities.Listing{}, false
	}
	point, err := entities.NewGeoPoint(loc.Lat, loc.Lng)
	if err != nil {
		return entities.Listing{}, false
	}

	status := entities.OpenStatus(kind, place.OpeningHours != nil && place.OpeningHours.OpenNow)
	attrs := map[string]string{}
	if place.Vicinity != "" {
		attrs[entities.AttrAddress] = place.Vicinity
		attrs[entities.AttrAddressAr] = place.Vicinity
	}
	if place.Rating > 0 {
		attrs[entities.AttrRating] = strconv.FormatFloat(place.Rating, 'f', 1, 64)
	}

	return entities.Listing{
		ID:            SupplementaryIDPrefix + place.PlaceID,
		Kind:          kind,
		Name:          place.Name,
		NameLocalized: place.Name,
		Position:      &point,
		CategoryTags:  append([]string(nil), place.Types...),
		Status:        status,
		Attributes:    attrs,
		Source:        entities.SourceSupplementary,
	}, true
}

func (g *GoogleGeolocationProvider) cached(ctx context.Context, key string) *providers.GeocodedAddress {
	if g.cache == nil {
		return nil
	}
	payload, err := g.cache.Get(ctx, key)
	if err != nil || len(payload) == 0 {
		return nil
	}
	var addr providers.GeocodedAddress
	if err := json.Unmarshal(payload, &addr); err != nil || (addr.Point.Lat == 0 && addr.Point.Lng == 0) {
		return nil
	}
	return &addr
}

func (g *GoogleGeolocationProvider) store(ctx context.Context, key string, addr *providers.GeocodedAddress, ttl int) {
	if g.cache == nil {
		return
	}
	if payload, err := json.Marshal(addr); err == nil {
		_ = g.cache.Set(ctx, key, payload, ttl)
	}
}

func (g *GoogleGeolocationProvider) doGeocodeRequest(ctx context.Context, params url.Values) (*googleGeocodeResponse, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google maps api key is required")
	}
	params.Set("key", g.apiKey)
	params.Set("region", g.region)

	var payload googleGeocodeResponse
	if err := g.getJSON(ctx, g.geocodeURL, params, &payload); err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	if payload.Status != "OK" {
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("geocode request failed: %s - %s", payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("geocode request failed: %s", payload.Status)
	}
	return &payload, nil
}

func (g *GoogleGeolocationProvider) searchPlaceAddress(ctx context.Context, query string) (*providers.GeocodedAddress, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google maps api key is required")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("region", g.region)
	params.Set("key", g.apiKey)

	var resp googlePlacesTextSearchResponse
	if err := g.getJSON(ctx, g.placesURL, params, &resp); err != nil {
		return nil, fmt.Errorf("places text search request failed: %w", err)
	}
	if resp.Status == "ZERO_RESULTS" || len(resp.Results) == 0 {
		return nil, nil
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("places text search failed: %s", resp.Status)
	}

	result := resp.Results[0]
	return &providers.GeocodedAddress{
		FormattedAddress: result.FormattedAddress,
		Point:            entities.GeoPoint{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
	}, nil
}

func (g *GoogleGeolocationProvider) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func toGeocodedAddress(result googleGeocodeResult) *providers.GeocodedAddress {
	return &providers.GeocodedAddress{
		FormattedAddress: result.FormattedAddress,
		City:             component(result.AddressComponents, "locality", "administrative_area_level_2"),
		State:            component(result.AddressComponents, "administrative_area_level_1"),
		Country:          component(result.AddressComponents, "country"),
		Point:            entities.GeoPoint{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng},
	}
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

func component(components []googleAddressComponent, primary string, fallback ...string) string {
	for _, t := range append([]string{primary}, fallback...) {
		for _, comp := range components {
			for _, ct := range comp.Types {
				if ct == t {
					return comp.LongName
				}
			}
		}
	}
	return ""
}

type googleGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message,omitempty"`
	Results      []googleGeocodeResult `json:"results"`
}

type googleGeocodeResult struct {
	FormattedAddress  string                   `json:"formatted_address"`
	AddressComponents []googleAddressComponent `json:"address_components"`
	Geometry          googleGeometry           `json:"geometry"`
}

type googleAddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googlePlacesTextSearchResponse struct {
	Status       string                         `json:"status"`
	ErrorMessage string                         `json:"error_message,omitempty"`
	Results      []googlePlacesTextSearchResult `json:"results"`
}

type googlePlacesTextSearchResult struct {
	FormattedAddress string         `json:"formatted_address"`
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	Geometry         googleGeometry `json:"geometry"`
}

type googlePlacesNearbyResponse struct {
	Status       string                     `json:"status"`
	ErrorMessage string                     `json:"error_message,omitempty"`
	Results      []googlePlacesNearbyResult `json:"results"`
}

type googlePlacesNearbyResult struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	Geometry struct {
		Location *googleLocation `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Rating float64  `json:"rating"`
	Types  []string `json:"types"`
}
