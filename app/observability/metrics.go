package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DiscordMetrics records command and interaction activity.
type DiscordMetrics interface {
	RecordAPIRequest(ctx context.Context, operation string)
	RecordAPIError(ctx context.Context, operation, errorType string)
	RecordAPIRequestDuration(ctx context.Context, operation string, duration time.Duration)
	RecordPageTurn(ctx context.Context, direction string)
}

type prometheusMetrics struct {
	requests  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	durations *prometheus.HistogramVec
	pageTurns *prometheus.CounterVec
}

// NewPrometheusMetrics registers the bot's collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) (DiscordMetrics, error) {
	m := &prometheusMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discord",
			Name:      "operations_total",
			Help:      "Completed bot operations.",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discord",
			Name:      "operation_errors_total",
			Help:      "Failed bot operations by error type.",
		}, []string{"operation", "error_type"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "discord",
			Name:      "operation_duration_seconds",
			Help:      "Duration of bot operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		pageTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pagination",
			Name:      "page_turns_total",
			Help:      "Pagination button presses that changed the page.",
		}, []string{"direction"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.errors, m.durations, m.pageTurns} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusMetrics) RecordAPIRequest(_ context.Context, operation string) {
	m.requests.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordAPIError(_ context.Context, operation, errorType string) {
	m.errors.WithLabelValues(operation, errorType).Inc()
}

func (m *prometheusMetrics) RecordAPIRequestDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordPageTurn(_ context.Context, direction string) {
	m.pageTurns.WithLabelValues(direction).Inc()
}
