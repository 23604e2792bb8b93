package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricCandidatesTotal     = "match_candidates_total"
	MetricBatchesTotal        = "match_batches_total"
	MetricBatchDuration       = "match_batch_duration_seconds"
	MetricScorerFallbackTotal = "match_scorer_fallbacks_total"
)

// Label values.
const (
	OutcomeScored  = "scored"
	OutcomeDropped = "dropped"

	StatusSuccess = "success"
	StatusFailure = "failure"

	ScorerSkills     = "skills"
	ScorerExperience = "experience"
	ScorerCulture    = "culture"
)

// Metrics contains Prometheus metrics for candidate matching.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	candidates    *prometheus.CounterVec
	batches       *prometheus.CounterVec
	batchDuration prometheus.Histogram
	fallbacks     *prometheus.CounterVec
}

// NewMetrics creates the collectors. They are not registered; call Register.
func NewMetrics() *Metrics {
	return &Metrics{
		candidates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCandidatesTotal,
				Help: "Total number of candidates processed by outcome",
			},
			[]string{"outcome"},
		),
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricBatchesTotal,
				Help: "Total number of match batches by status",
			},
			[]string{"status"},
		),
		batchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricBatchDuration,
				Help:    "Histogram of match batch duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricScorerFallbackTotal,
				Help: "Total number of scorer-internal failures converted to default scores",
			},
			[]string{"scorer"},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.candidates,
		m.batches,
		m.batchDuration,
		m.fallbacks,
	}
}

func (m *Metrics) incCandidates(outcome string) {
	if m == nil {
		return
	}
	m.candidates.WithLabelValues(outcome).Inc()
}

func (m *Metrics) incBatches(status string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(status).Inc()
}

func (m *Metrics) observeBatch(seconds float64) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(seconds)
}

func (m *Metrics) incFallback(scorer string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(scorer).Inc()
}
