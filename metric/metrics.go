// Package metric provides Prometheus instrumentation for document processing.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	streammetric "github.com/c360studio/semstreams/metric"
)

// ServiceName keys every collector registered by Register.
const ServiceName = "ontoview"

// Status label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Stage label values.
const (
	StageParse   = "parse"
	StageExtract = "extract"
	StageBuild   = "build"
)

// Metrics contains the document processing metrics
type Metrics struct {
	DocumentsProcessed *prometheus.CounterVec
	TriplesIngested    *prometheus.CounterVec
	ElementsProjected  prometheus.Counter
	StageDuration      *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontoview",
				Subsystem: "documents",
				Name:      "processed_total",
				Help:      "Total number of documents processed",
			},
			[]string{"format", "status"},
		),

		TriplesIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontoview",
				Subsystem: "triples",
				Name:      "ingested_total",
				Help:      "Total number of triples parsed from documents",
			},
			[]string{"format"},
		),

		ElementsProjected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ontoview",
				Subsystem: "table",
				Name:      "elements_total",
				Help:      "Total number of element rows built",
			},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ontoview",
				Subsystem: "processing",
				Name:      "duration_seconds",
				Help:      "Document processing duration in seconds by stage",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// Register adds every collector to reg. Registration is keyed by metric name,
// so registering again is a no-op.
func (m *Metrics) Register(reg streammetric.MetricsRegistrar) error {
	if err := reg.RegisterCounterVec(ServiceName, "documents_processed", m.DocumentsProcessed); err != nil {
		return err
	}
	if err := reg.RegisterCounterVec(ServiceName, "triples_ingested", m.TriplesIngested); err != nil {
		return err
	}
	if err := reg.RegisterCounter(ServiceName, "elements_projected", m.ElementsProjected); err != nil {
		return err
	}
	return reg.RegisterHistogramVec(ServiceName, "stage_duration", m.StageDuration)
}

// RecordDocument increments the processed document counter
func (m *Metrics) RecordDocument(format string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusFailed
	}
	m.DocumentsProcessed.WithLabelValues(format, status).Inc()
}

// RecordTriples adds n parsed triples
func (m *Metrics) RecordTriples(format string, n int) {
	m.TriplesIngested.WithLabelValues(format).Add(float64(n))
}

// RecordElements adds n element rows
func (m *Metrics) RecordElements(n int) {
	m.ElementsProjected.Add(float64(n))
}

// RecordStageDuration records processing time for one stage
func (m *Metrics) RecordStageDuration(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
