package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg, "ftcscout")
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordAPIRequest(ctx, "handle_team")
	m.RecordAPIRequest(ctx, "handle_team")
	m.RecordAPIError(ctx, "handle_match", "result_error")
	m.RecordAPIRequestDuration(ctx, "handle_team", 20*time.Millisecond)
	m.RecordPageTurn(ctx, "next")

	impl := m.(*prometheusMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(impl.requests.WithLabelValues("handle_team")))
	assert.Equal(t, 1.0, testutil.ToFloat64(impl.errors.WithLabelValues("handle_match", "result_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(impl.pageTurns.WithLabelValues("next")))
	assert.Equal(t, 1, testutil.CollectAndCount(impl.durations))
}

func TestNewPrometheusMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg, "ftcscout")
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(reg, "ftcscout")
	assert.Error(t, err)
}
