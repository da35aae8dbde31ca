package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics of a generation run
type Registry struct {
	EntitiesGenerated *prometheus.CounterVec
	PersistDuration   *prometheus.HistogramVec
	PersistErrors     *prometheus.CounterVec
	RunDuration       prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.EntitiesGenerated = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topogen_entities_generated_total",
			Help: "Total number of generated entities",
		},
		[]string{"kind"},
	)

	r.PersistDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "topogen_persist_duration_seconds",
			Help:    "Duration of persisting one batch in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"batch"},
	)

	r.PersistErrors = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topogen_persist_errors_total",
			Help: "Total number of batches that failed to persist",
		},
		[]string{"batch"},
	)

	r.RunDuration = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "topogen_run_duration_seconds",
			Help: "Wall time of the last generation run in seconds",
		},
	)

	return r
}

// RecordEntities adds n generated entities of a kind
func (r *Registry) RecordEntities(kind string, n int) {
	r.EntitiesGenerated.WithLabelValues(kind).Add(float64(n))
}

// RecordPersist records the outcome of persisting one batch
func (r *Registry) RecordPersist(batch string, duration time.Duration, err error) {
	r.PersistDuration.WithLabelValues(batch).Observe(duration.Seconds())
	if err != nil {
		r.PersistErrors.WithLabelValues(batch).Inc()
	}
}

// RecordRun records the duration of a complete run
func (r *Registry) RecordRun(duration time.Duration) {
	r.RunDuration.Set(duration.Seconds())
}

// WriteTextfile writes all metrics in the node exporter textfile format
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
