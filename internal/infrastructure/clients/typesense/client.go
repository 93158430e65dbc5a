package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense"

	"github.com/afandyna/ser-Health/pkg/config"
	"github.com/afandyna/ser-Health/pkg/retry"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	return NewClientWithRetry(cfg, retry.DefaultConfig())
}

// NewClientWithRetry creates a client using a custom retry policy for the health check.
func NewClientWithRetry(cfg *config.TypesenseConfig, retryConfig retry.Config) (*Client, error) {
	c := New(cfg)

	err := retry.DoWithLog(
		context.Background(),
		retryConfig,
		"Typesense",
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := c.client.Health(ctx, 2*time.Second)
			return err
		},
		retry.ZerologAttempts(&log.Logger, "typesense"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("connected to Typesense")
	return c, nil
}

// New creates a client without checking connectivity.
func New(cfg *config.TypesenseConfig) *Client {
	return &Client{
		client: typesense.NewClient(
			typesense.WithServer(cfg.URL),
			typesense.WithAPIKey(cfg.APIKey),
			typesense.WithConnectionTimeout(5*time.Second),
		),
	}
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}
