package extraction

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/walled99/Learn-Deutsch/internal/domain"
)

const metricsNamespace = "lerndeutsch"

// Metrics holds the Prometheus collectors of the extraction service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	attempts        *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
	outcomes        *prometheus.CounterVec
	candidates      prometheus.Histogram
	rejected        prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "extraction",
			Name:      "attempts_total",
			Help:      "Remote generateContent attempts by result.",
		}, []string{"result"}),
		attemptDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "extraction",
			Name:      "attempt_duration_seconds",
			Help:      "Duration of a single remote attempt.",
			Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30},
		}, []string{"result"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "extraction",
			Name:      "outcomes_total",
			Help:      "Extraction outcomes by failure kind (empty on success).",
		}, []string{"succeeded", "kind"}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "extraction",
			Name:      "candidates",
			Help:      "Accepted candidates per successful extraction.",
			Buckets:   []float64{0, 1, 5, 10, 20, 50},
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "extraction",
			Name:      "rejected_elements_total",
			Help:      "Model answer elements dropped by validation.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.attempts, m.attemptDuration, m.outcomes, m.candidates, m.rejected)
	}
	return m
}

func (m *Metrics) observeAttempt(kind domain.ErrorKind, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if kind != "" {
		result = kind.String()
	}
	m.attempts.WithLabelValues(result).Inc()
	m.attemptDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) observeOutcome(o domain.ExtractionOutcome, rejected int) {
	if m == nil {
		return
	}
	if o.Succeeded {
		m.outcomes.WithLabelValues("true", "").Inc()
		m.candidates.Observe(float64(len(o.Candidates)))
	} else {
		m.outcomes.WithLabelValues("false", o.FailureKind.String()).Inc()
	}
	m.rejected.Add(float64(rejected))
}
