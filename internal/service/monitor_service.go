package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

// MonitorConfig tunes the polling state machine.
type MonitorConfig struct {
	PollInterval    time.Duration
	ConfirmAttempts int
	ConfirmInterval time.Duration
}

// MonitorServiceImpl implements ports.LoanMonitor. One goroutine owns the
// polling cadence; every check (scheduled, forced or synchronous) runs under
// checkMu, so results publish in completion order and a slow stale check can
// never overwrite a newer one.
type MonitorServiceImpl struct {
	reader  ports.ChainReader
	address string
	cfg     MonitorConfig
	cache   ports.StateCache
	audit   ports.AuditService
	log     zerolog.Logger

	checkMu sync.Mutex // serializes chain fetch + publish

	stateMu     sync.RWMutex
	current     domain.LockUpdate
	subscribers []func(domain.LockUpdate)

	trigger  chan struct{} // capacity 1, coalesces ForceCheck bursts
	started  bool
	stopOnce sync.Once
	stopped  chan struct{}
	done     chan struct{}
}

// NewMonitorService creates the loan monitor for one wallet address.
func NewMonitorService(
	reader ports.ChainReader,
	address string,
	cfg MonitorConfig,
	cache ports.StateCache,
	audit ports.AuditService,
	log zerolog.Logger,
) *MonitorServiceImpl {
	return &MonitorServiceImpl{
		reader:  reader,
		address: address,
		cfg:     cfg,
		cache:   cache,
		audit:   audit,
		log:     log,
		current: domain.LockUpdate{State: domain.LockStateUnknown},
		trigger: make(chan struct{}, 1),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start restores any cached state and launches the poll loop. The first check
// runs immediately so a freshly started agent converges without waiting a
// full poll interval.
func (m *MonitorServiceImpl) Start(ctx context.Context) {
	m.restore(ctx)
	m.started = true
	go m.loop(ctx)
}

// Stop terminates the poll loop and waits for it to exit.
func (m *MonitorServiceImpl) Stop() {
	m.stopOnce.Do(func() { close(m.stopped) })
	if m.started {
		<-m.done
	}
}

// restore seeds the published state from the cache so a restart resumes the
// previous enforcement decision instead of an unlocked default.
func (m *MonitorServiceImpl) restore(ctx context.Context) {
	if m.cache == nil {
		return
	}
	cached, err := m.cache.Load(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to load cached lock state, starting from UNKNOWN")
		return
	}
	if cached == nil {
		return
	}

	cached.Stale = true
	cached.LastError = ""
	m.stateMu.Lock()
	m.current = *cached
	m.stateMu.Unlock()

	m.log.Info().
		Str("state", string(cached.State)).
		Time("checked_at", cached.CheckedAt).
		Msg("restored lock state from cache")
}

func (m *MonitorServiceImpl) loop(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopped:
			return
		case <-ticker.C:
			m.check(ctx)
		case <-m.trigger:
			m.check(ctx)
		}
	}
}

// Snapshot returns the last published value without touching the chain.
func (m *MonitorServiceImpl) Snapshot() domain.LockUpdate {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.current
}

// ForceCheck schedules an immediate out-of-cadence check. Triggers issued
// while a check is already pending collapse into one.
func (m *MonitorServiceImpl) ForceCheck() {
	select {
	case m.trigger <- struct{}{}:
	default:
	}
}

// CheckNow fetches and publishes synchronously.
func (m *MonitorServiceImpl) CheckNow(ctx context.Context) (domain.LockUpdate, error) {
	return m.check(ctx)
}

// check performs one fetch-derive-publish cycle. A failed fetch retains the
// previous state and marks it stale; enforcement is never relaxed on error.
func (m *MonitorServiceImpl) check(ctx context.Context) (domain.LockUpdate, error) {
	m.checkMu.Lock()
	defer m.checkMu.Unlock()

	loan, err := m.reader.GetActiveLoan(ctx, m.address)
	now := time.Now().UTC()

	if err != nil {
		prev := m.Snapshot()
		update := domain.LockUpdate{
			State:     prev.State,
			Loan:      prev.Loan,
			CheckedAt: now,
			Stale:     true,
			LastError: err.Error(),
		}
		m.publish(update, prev)
		m.log.Warn().Err(err).Str("state", string(update.State)).Msg("loan poll failed, retaining previous state")
		m.journalPollFailure(err)
		return update, err
	}

	update := domain.LockUpdate{
		State:     domain.NextState(loan),
		Loan:      loan,
		CheckedAt: now,
	}
	prev := m.Snapshot()
	m.publish(update, prev)

	if prev.State != update.State {
		m.log.Info().
			Str("from", string(prev.State)).
			Str("to", string(update.State)).
			Msg("lock state changed")
		m.journalStateChange(update)
	}
	return update, nil
}

// publish installs the update, persists it and invokes subscribers. Callers
// hold checkMu, so updates land in completion order.
func (m *MonitorServiceImpl) publish(update, prev domain.LockUpdate) {
	m.stateMu.Lock()
	m.current = update
	subs := m.subscribers
	m.stateMu.Unlock()

	if m.cache != nil && !update.Stale {
		if err := m.cache.Save(context.Background(), update); err != nil {
			m.log.Warn().Err(err).Msg("failed to persist lock state")
		}
	}

	for _, fn := range subs {
		fn(update)
	}
}

// AwaitUnlock polls after a repayment until the published state leaves the
// locked set or the attempt budget is exhausted. Stale reads do not count as
// confirmation.
func (m *MonitorServiceImpl) AwaitUnlock(ctx context.Context) (bool, error) {
	for attempt := 0; attempt < m.cfg.ConfirmAttempts; attempt++ {
		update, err := m.check(ctx)
		if err == nil && !update.Stale && update.State.Unlocked() {
			m.log.Info().Int("attempts", attempt+1).Msg("unlock confirmed")
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(m.cfg.ConfirmInterval):
		}
	}

	m.log.Warn().Int("attempts", m.cfg.ConfirmAttempts).Msg("unlock not confirmed within attempt budget")
	return false, nil
}

// Subscribe registers a callback invoked on every published update. Register
// before Start; callbacks run on the publishing goroutine and must not block.
func (m *MonitorServiceImpl) Subscribe(fn func(domain.LockUpdate)) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *MonitorServiceImpl) journalStateChange(update domain.LockUpdate) {
	if m.audit == nil {
		return
	}
	event := domain.NewEnforcementEvent(m.address, domain.ActionStateChanged)
	event.LockState = update.State
	m.audit.Record(context.Background(), event)
}

func (m *MonitorServiceImpl) journalPollFailure(err error) {
	if m.audit == nil {
		return
	}
	event := domain.NewEnforcementEvent(m.address, domain.ActionPollFailed)
	event.Details = fmt.Sprintf(`{"error":%q}`, err.Error())
	m.audit.Record(context.Background(), event)
}
