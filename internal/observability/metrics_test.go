package observability

import (
	"testing"
	"time"

	"loan-enforcement-agent/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpdate_FreshLocked(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveUpdate(domain.LockUpdate{
		State:     domain.LockStateOverdue,
		CheckedAt: time.Now(),
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LockEngaged))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.StateStale))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PollsTotal.WithLabelValues("ok")))
}

func TestObserveUpdate_StaleRetainsLockGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue})
	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue, Stale: true})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LockEngaged))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StateStale))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PollsTotal.WithLabelValues("error")))
}

func TestObserveUpdate_CountsTransitionsOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue})
	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue})
	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue, Stale: true})

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.StateChanges.WithLabelValues(string(domain.LockStateOverdue))))
}

func TestObserveUpdate_CountsUnlockConfirmation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue})

	// A stale value is a retained guess, not a confirmation.
	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateActiveOK, Stale: true})
	assert.Equal(t, float64(0), testutil.ToFloat64(m.UnlockConfirmed))

	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateActiveOK})
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UnlockConfirmed))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.StateChanges.WithLabelValues(string(domain.LockStateActiveOK))))
}

func TestObserveTx(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveTx("payBackLoan", "submitted")
	m.ObserveTx("payBackLoan", "confirmed")
	m.ObserveTx("approve", "submitted")

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.TxSubmissions.WithLabelValues("payBackLoan", "submitted")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.TxSubmissions.WithLabelValues("payBackLoan", "confirmed")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.TxSubmissions.WithLabelValues("approve", "submitted")))
}

func TestObserveUpdate_UnknownDoesNotMoveLockGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateOverdue})
	m.ObserveUpdate(domain.LockUpdate{State: domain.LockStateUnknown})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LockEngaged))
}
