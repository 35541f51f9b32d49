package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnforcementAction identifies the kind of journaled enforcement event.
type EnforcementAction string

const (
	ActionLockApplied    EnforcementAction = "LOCK_APPLIED"
	ActionLockReleased   EnforcementAction = "LOCK_RELEASED"
	ActionLockReasserted EnforcementAction = "LOCK_REASSERTED"
	ActionStateChanged   EnforcementAction = "STATE_CHANGED"
	ActionPollFailed     EnforcementAction = "POLL_FAILED"
	ActionTxSubmitted    EnforcementAction = "TX_SUBMITTED"
	ActionTxConfirmed    EnforcementAction = "TX_CONFIRMED"
	ActionSwitchAttempt  EnforcementAction = "NETWORK_SWITCH_ATTEMPTED"
)

// EnforcementEvent records a single enforcement-relevant occurrence.
type EnforcementEvent struct {
	ID            uuid.UUID         `json:"id"`
	WalletAddress string            `json:"wallet_address"`
	Action        EnforcementAction `json:"action"`
	LockState     LockState         `json:"lock_state,omitempty"`
	TxHash        string            `json:"tx_hash,omitempty"`
	Details       string            `json:"details,omitempty"` // JSON string
	CreatedAt     time.Time         `json:"created_at"`
}

// NewEnforcementEvent builds an event with a fresh id and timestamp.
func NewEnforcementEvent(address string, action EnforcementAction) *EnforcementEvent {
	return &EnforcementEvent{
		ID:            uuid.New(),
		WalletAddress: address,
		Action:        action,
		CreatedAt:     time.Now().UTC(),
	}
}
