package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_RecordsWithoutProvider(t *testing.T) {
	metrics, err := InitMetrics()
	require.NoError(t, err)
	require.NotNil(t, metrics.DedupDropped)
	require.NotNil(t, metrics.SourceFallback)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, metrics, "GET", "/api/directory/{kind}", 200, 15*time.Millisecond)
		RecordDedupDropped(ctx, metrics, "hospital", 2)
		RecordSourceFallback(ctx, metrics, "hospital", "typesense")
		RecordCacheHit(ctx, metrics, "geocode")
		RecordCacheMiss(ctx, metrics, "geocode")
	})
}

func TestRecorders_NilMetrics(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, nil, "GET", "/health", 200, time.Millisecond)
		RecordDBMetric(ctx, nil, "select", time.Millisecond)
		RecordDedupDropped(ctx, nil, "doctor", 1)
		RecordSourceFallback(ctx, nil, "doctor", "postgres")
	})
}

func TestLoggerFromContext_WithoutSpan(t *testing.T) {
	InitLogger("ser-health-test", "test", "debug")
	logger := LoggerFromContext(context.Background())
	require.NotNil(t, logger)
	logger.Debug().Msg("logger ready")
}
