package service

import (
	"context"
	"sync"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

// LockControllerImpl implements ports.LockController. It translates lock
// decisions into the pinning bridge and deliberately re-invokes the pinning
// sequence when the same locked decision arrives again, so a user who broke
// out of the pinned screen is re-pinned within one poll cycle.
type LockControllerImpl struct {
	bridge  ports.PinningBridge
	audit   ports.AuditService
	address string
	log     zerolog.Logger

	mu          sync.Mutex
	lastApplied domain.LockState
}

// NewLockController creates the device lock controller.
func NewLockController(bridge ports.PinningBridge, audit ports.AuditService, address string, log zerolog.Logger) *LockControllerImpl {
	return &LockControllerImpl{
		bridge:      bridge,
		audit:       audit,
		address:     address,
		log:         log,
		lastApplied: domain.LockStateUnknown,
	}
}

// ApplyState enforces the decision. UNKNOWN applies nothing: it is neither a
// lock nor a permission to release one.
func (c *LockControllerImpl) ApplyState(ctx context.Context, state domain.LockState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case state.Locked():
		return c.lockLocked(ctx, state)
	case state.Unlocked():
		return c.unlockLocked(ctx, state)
	default:
		c.log.Debug().Str("state", string(state)).Msg("no enforcement action for state")
		return nil
	}
}

// OnForeground re-asserts the lock when the app returns to the foreground.
// Unlocked states need no re-assertion.
func (c *LockControllerImpl) OnForeground(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastApplied.Locked() {
		return nil
	}
	c.log.Info().Str("state", string(c.lastApplied)).Msg("re-asserting lock on foreground")
	return c.lockLocked(ctx, c.lastApplied)
}

func (c *LockControllerImpl) lockLocked(ctx context.Context, state domain.LockState) error {
	reassert := c.lastApplied == state

	if err := c.bridge.StartPinning(ctx); err != nil {
		return err
	}
	if err := c.bridge.DisableExitGesture(ctx); err != nil {
		return err
	}
	c.lastApplied = state

	action := domain.ActionLockApplied
	if reassert {
		action = domain.ActionLockReasserted
	}
	c.journal(action, state)
	c.log.Info().Str("state", string(state)).Bool("reassert", reassert).Msg("device lock applied")
	return nil
}

func (c *LockControllerImpl) unlockLocked(ctx context.Context, state domain.LockState) error {
	wasLocked := c.lastApplied.Locked()

	if err := c.bridge.EnableExitGesture(ctx); err != nil {
		return err
	}
	if err := c.bridge.StopPinning(ctx); err != nil {
		return err
	}
	c.lastApplied = state

	if wasLocked {
		c.journal(domain.ActionLockReleased, state)
		c.log.Info().Str("state", string(state)).Msg("device lock released")
	}
	return nil
}

func (c *LockControllerImpl) journal(action domain.EnforcementAction, state domain.LockState) {
	if c.audit == nil {
		return
	}
	event := domain.NewEnforcementEvent(c.address, action)
	event.LockState = state
	c.audit.Record(context.Background(), event)
}
