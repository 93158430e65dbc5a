package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env         string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Typesense   TypesenseConfig
	Geolocation GeolocationConfig
	Matcher     MatcherConfig
	OTEL        OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	GraphQLEnabled bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	Enabled  bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	URL     string
	APIKey  string
	Enabled bool
}

// GeolocationConfig holds geolocation provider configuration
type GeolocationConfig struct {
	Provider  string // google or mock
	APIKey    string
	NearbyURL string
}

// MatcherConfig holds the merge and ranking thresholds
type MatcherConfig struct {
	DedupRadiusKm       float64
	SentinelDistanceKm  float64
	TieThresholdKm      float64
	NearbyRadiusMeters  int
	ProxyRadiusMeters   int
	EmergencyPriorityKm float64
	MergeSampleData     bool
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
			GraphQLEnabled: getEnvAsBool("GRAPHQL_ENABLED", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "ser_health"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Enabled:  getEnvAsBool("DB_ENABLED", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},
		Typesense: TypesenseConfig{
			URL:     getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey:  getEnv("TYPESENSE_API_KEY", "xyz"),
			Enabled: getEnvAsBool("TYPESENSE_ENABLED", true),
		},
		Geolocation: GeolocationConfig{
			Provider:  getEnv("GEOLOCATION_PROVIDER", "mock"),
			APIKey:    getEnv("GOOGLE_MAPS_API_KEY", getEnv("GEOLOCATION_API_KEY", "")),
			NearbyURL: getEnv("GOOGLE_PLACES_NEARBY_URL", ""),
		},
		Matcher: MatcherConfig{
			DedupRadiusKm:       getEnvAsFloat("DEDUP_RADIUS_KM", 0.3),
			SentinelDistanceKm:  getEnvAsFloat("SENTINEL_DISTANCE_KM", 999),
			TieThresholdKm:      getEnvAsFloat("TIE_THRESHOLD_KM", 0.1),
			NearbyRadiusMeters:  getEnvAsInt("NEARBY_RADIUS_METERS", 10000),
			ProxyRadiusMeters:   getEnvAsInt("PROXY_RADIUS_METERS", 5000),
			EmergencyPriorityKm: getEnvAsFloat("EMERGENCY_PRIORITY_KM", 20),
			MergeSampleData:     getEnvAsBool("MERGE_SAMPLE_DATA", true),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "ser-health"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.Matcher.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects non-positive thresholds.
func (m MatcherConfig) Validate() error {
	switch {
	case m.DedupRadiusKm <= 0:
		return fmt.Errorf("DEDUP_RADIUS_KM must be positive, got %v", m.DedupRadiusKm)
	case m.SentinelDistanceKm <= 0:
		return fmt.Errorf("SENTINEL_DISTANCE_KM must be positive, got %v", m.SentinelDistanceKm)
	case m.TieThresholdKm <= 0:
		return fmt.Errorf("TIE_THRESHOLD_KM must be positive, got %v", m.TieThresholdKm)
	case m.NearbyRadiusMeters <= 0:
		return fmt.Errorf("NEARBY_RADIUS_METERS must be positive, got %d", m.NearbyRadiusMeters)
	case m.ProxyRadiusMeters <= 0:
		return fmt.Errorf("PROXY_RADIUS_METERS must be positive, got %d", m.ProxyRadiusMeters)
	case m.EmergencyPriorityKm <= 0:
		return fmt.Errorf("EMERGENCY_PRIORITY_KM must be positive, got %v", m.EmergencyPriorityKm)
	}
	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Address returns the HTTP listen address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
