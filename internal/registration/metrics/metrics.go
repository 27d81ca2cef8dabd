package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration module.
type Metrics struct {
	// Evaluations by overall outcome ("accepted", "rejected")
	Evaluations *prometheus.CounterVec

	// Failing rules by rule name
	RuleFailures *prometheus.CounterVec

	// Time spent running the full rule set
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance registered against reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "policycore_registration_evaluations_total",
			Help: "Total registration validations by outcome",
		}, []string{"outcome"}),

		RuleFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "policycore_registration_rule_failures_total",
			Help: "Total failing rule evaluations by rule",
		}, []string{"rule"}),

		EvaluateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "policycore_registration_evaluate_duration_seconds",
			Help:    "Duration of a full registration validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementOutcome records an overall validation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Evaluations.WithLabelValues(outcome).Inc()
	}
}

// IncrementRuleFailure records one failing rule.
func (m *Metrics) IncrementRuleFailure(rule string) {
	if m != nil {
		m.RuleFailures.WithLabelValues(rule).Inc()
	}
}

// ObserveEvaluateLatency records the total validation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
