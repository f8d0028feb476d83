// Package telemetry provides OpenTelemetry instrumentation for the
// normalization service. It exports Prometheus metrics and provides tracing
// capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "normalizer"

// Metrics holds all normalization pipeline Prometheus metrics
type Metrics struct {
	// Pipeline metrics
	ItemsNormalized    *prometheus.CounterVec
	ItemsFailed        *prometheus.CounterVec
	NormalizeDuration  *prometheus.HistogramVec
	BatchSize          prometheus.Histogram
	DuplicatesRemoved  prometheus.Counter
	ValidationFailures prometheus.Counter
	DedupIndexSize     prometheus.Gauge

	// Tagging metrics
	TagMatchDuration prometheus.Histogram
	TagsProduced     prometheus.Counter
	TagsSuggested    prometheus.Counter
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initPipelineMetrics(m)
	initTaggingMetrics(m)
	return m
}

func initPipelineMetrics(m *Metrics) {
	m.ItemsNormalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "normalizer_items_normalized_total",
		Help: "Total items successfully normalized, by produced content type",
	}, []string{"content_type"})

	m.ItemsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "normalizer_items_failed_total",
		Help: "Total items that failed normalization",
	}, []string{"stage"})

	m.NormalizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "normalizer_item_duration_seconds",
		Help:    "Time to normalize a single item",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"raw_content_type"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "normalizer_batch_size",
		Help:    "Number of items per batch call",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.DuplicatesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_duplicates_removed_total",
		Help: "Total items suppressed by the deduplicator",
	})

	m.ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_validation_failures_total",
		Help: "Total advisory validation failures",
	})

	m.DedupIndexSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "normalizer_dedup_index_size",
		Help: "Current entries in the deduplication index",
	})
}

func initTaggingMetrics(m *Metrics) {
	m.TagMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "normalizer_tag_match_duration_seconds",
		Help:    "Time spent matching taxonomy categories",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.TagsProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_tags_produced_total",
		Help: "Total tags at or above the confidence threshold",
	})

	m.TagsSuggested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "normalizer_tags_suggested_total",
		Help: "Total tags below the confidence threshold",
	})
}

// RecordNormalization records metrics for a single normalized item
func (p *Provider) RecordNormalization(ctx context.Context, rawType, producedType string, duration time.Duration) {
	p.Metrics.ItemsNormalized.WithLabelValues(producedType).Inc()
	p.Metrics.NormalizeDuration.WithLabelValues(rawType).Observe(duration.Seconds())
}

// RecordNormalizationFailure records a failed item with the stage that failed
func (p *Provider) RecordNormalizationFailure(ctx context.Context, stage string) {
	p.Metrics.ItemsFailed.WithLabelValues(stage).Inc()
}

// RecordBatch records the size of a batch call
func (p *Provider) RecordBatch(ctx context.Context, size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordDuplicate counts a suppressed duplicate
func (p *Provider) RecordDuplicate(ctx context.Context) {
	p.Metrics.DuplicatesRemoved.Inc()
}

// RecordValidationFailures counts advisory validation failures
func (p *Provider) RecordValidationFailures(ctx context.Context, count int) {
	p.Metrics.ValidationFailures.Add(float64(count))
}

// SetDedupIndexSize updates the dedup index gauge
func (p *Provider) SetDedupIndexSize(size int) {
	p.Metrics.DedupIndexSize.Set(float64(size))
}

// RecordTagging records taxonomy matching metrics for one item
func (p *Provider) RecordTagging(ctx context.Context, duration time.Duration, tags, suggested int) {
	p.Metrics.TagMatchDuration.Observe(duration.Seconds())
	p.Metrics.TagsProduced.Add(float64(tags))
	p.Metrics.TagsSuggested.Add(float64(suggested))
}

// StartSpan starts a tracing span with the given name
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name)
}
