package router

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
)

const (
	outcomeCommitted = "committed"
	outcomeRejected  = "rejected"
)

// Metrics counts dispatched actions. A nil *Metrics records nothing.
type Metrics struct {
	transitions *prometheus.CounterVec
	resets      prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "transitions_total",
			Help:      "Navigation actions dispatched, by action and outcome.",
		}, []string{"action", "outcome"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "definition_resets_total",
			Help:      "Definition tree swaps that could not keep the current path.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.transitions, m.resets)
	}
	return m
}

func (m *Metrics) observe(t ActionType, reset bool, err error) {
	if m == nil {
		return
	}
	outcome := outcomeCommitted
	if err != nil {
		outcome = outcomeRejected
	}
	m.transitions.WithLabelValues(t.Name(), outcome).Inc()
	if reset {
		m.resets.Inc()
	}
}
