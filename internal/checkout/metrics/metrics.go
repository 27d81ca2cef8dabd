package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the checkout module.
type Metrics struct {
	// Checkouts by result reason and payment method
	Checkouts *prometheus.CounterVec

	// Notifications dispatched after successful payment
	Notifications prometheus.Counter
}

// New creates a Metrics instance registered against reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Checkouts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "policycore_checkout_total",
			Help: "Total checkout attempts by reason and payment method",
		}, []string{"reason", "method"}),

		Notifications: f.NewCounter(prometheus.CounterOpts{
			Name: "policycore_checkout_notifications_total",
			Help: "Total customer notifications sent after payment",
		}),
	}
}

// IncrementCheckout records one checkout attempt.
func (m *Metrics) IncrementCheckout(reason, method string) {
	if m != nil {
		m.Checkouts.WithLabelValues(reason, method).Inc()
	}
}

// IncrementNotification records one notification.
func (m *Metrics) IncrementNotification() {
	if m != nil {
		m.Notifications.Inc()
	}
}
