package observability

import (
	"loan-enforcement-agent/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the agent's Prometheus collectors.
type Metrics struct {
	PollsTotal      *prometheus.CounterVec
	StateChanges    *prometheus.CounterVec
	TxSubmissions   *prometheus.CounterVec
	LockEngaged     prometheus.Gauge
	StateStale      prometheus.Gauge
	UnlockConfirmed prometheus.Counter

	// last is the previous fresh state, used to count transitions. Updates
	// arrive one at a time from the monitor's publish path.
	last domain.LockState
}

// NewMetrics registers the agent collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		last: domain.LockStateUnknown,
		PollsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loan_agent",
			Name:      "polls_total",
			Help:      "Loan status polls by result.",
		}, []string{"result"}),
		StateChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loan_agent",
			Name:      "lock_state_changes_total",
			Help:      "Lock state transitions by target state.",
		}, []string{"to"}),
		TxSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loan_agent",
			Name:      "tx_submissions_total",
			Help:      "Write transactions by method and result.",
		}, []string{"method", "result"}),
		LockEngaged: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "loan_agent",
			Name:      "lock_engaged",
			Help:      "1 while the published state requires device pinning.",
		}),
		StateStale: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "loan_agent",
			Name:      "state_stale",
			Help:      "1 while the published state is a retained value after a failed poll.",
		}),
		UnlockConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loan_agent",
			Name:      "unlock_confirmations_total",
			Help:      "Post-repayment unlock confirmations.",
		}),
	}
}

// ObserveUpdate records one published lock update. It is not safe for
// concurrent use; the monitor serializes publishes.
func (m *Metrics) ObserveUpdate(update domain.LockUpdate) {
	if update.Stale {
		m.PollsTotal.WithLabelValues("error").Inc()
		m.StateStale.Set(1)
	} else {
		m.PollsTotal.WithLabelValues("ok").Inc()
		m.StateStale.Set(0)

		if update.State != m.last {
			m.StateChanges.WithLabelValues(string(update.State)).Inc()
			if m.last.Locked() && update.State.Unlocked() {
				m.UnlockConfirmed.Inc()
			}
			m.last = update.State
		}
	}

	if update.State.Locked() {
		m.LockEngaged.Set(1)
	} else if update.State.Unlocked() {
		m.LockEngaged.Set(0)
	}
}

// ObserveTx records one write-transaction lifecycle step.
func (m *Metrics) ObserveTx(method, result string) {
	m.TxSubmissions.WithLabelValues(method, result).Inc()
}
