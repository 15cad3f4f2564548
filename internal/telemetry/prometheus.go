// Package telemetry exports asset store metrics through Prometheus.
package telemetry

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "assetstore"

// PrometheusRecorder implements assetstore.MetricsRecorder on a private
// registry, so several stores in one process do not collide
type PrometheusRecorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cascaded   *prometheus.CounterVec
	evictions  prometheus.Counter
}

// NewPrometheusRecorder creates the recorder and registers its collectors
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Store operations by name and outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Store operation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
			[]string{"operation"},
		),
		cascaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cascade_deleted_total",
				Help:      "Records removed as a side effect of a delete, by kind",
			},
			[]string{"kind"},
		),
		evictions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "history_evictions_total",
				Help:      "History entries dropped because the stack was full",
			},
		),
	}
}

// Registry returns the registry holding the recorder's collectors
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe implements assetstore.MetricsRecorder
func (r *PrometheusRecorder) Observe(operation string, success bool, duration time.Duration) {
	outcome := "applied"
	if !success {
		outcome = "declined"
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Cascaded implements assetstore.MetricsRecorder
func (r *PrometheusRecorder) Cascaded(kind string, count int) {
	r.cascaded.WithLabelValues(kind).Add(float64(count))
}

// Evicted implements assetstore.MetricsRecorder
func (r *PrometheusRecorder) Evicted(count int) {
	r.evictions.Add(float64(count))
}

// Dump writes one line per counter series and the count of every histogram,
// sorted by metric name and labels
func (r *PrometheusRecorder) Dump(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labels, m.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				lines = append(lines, fmt.Sprintf("%s_count%s %d", mf.GetName(), labels, m.GetHistogram().GetSampleCount()))
			}
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
