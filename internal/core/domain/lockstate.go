package domain

import "time"

// LockState is the derived device-enforcement state machine value.
type LockState string

const (
	// LockStateUnknown means no successful read has completed yet. It is not
	// an unlocked state: enforcement decisions must not be relaxed from it.
	LockStateUnknown LockState = "UNKNOWN"

	LockStateNoLoan    LockState = "NO_LOAN"
	LockStateActiveOK  LockState = "ACTIVE_OK"
	LockStateOverdue   LockState = "OVERDUE_LOCK"
	LockStateDefaulted LockState = "DEFAULTED_LOCK"
)

// Locked reports whether the state requires device pinning.
func (s LockState) Locked() bool {
	return s == LockStateOverdue || s == LockStateDefaulted
}

// Unlocked reports whether the state positively allows releasing the device.
// Unknown is neither locked nor unlocked.
func (s LockState) Unlocked() bool {
	return s == LockStateNoLoan || s == LockStateActiveOK
}

// NextState is the pure transition function from an observed loan snapshot.
func NextState(loan *Loan) LockState {
	if loan == nil {
		return LockStateNoLoan
	}
	switch loan.Status {
	case LoanStatusOverdue:
		return LockStateOverdue
	case LoanStatusDefaulted:
		return LockStateDefaulted
	default: // Active and Paid both leave the device usable
		return LockStateActiveOK
	}
}

// LockUpdate is the value published to subscribers after each recomputation.
type LockUpdate struct {
	State     LockState  `json:"state"`
	Loan      *Loan      `json:"loan,omitempty"`
	CheckedAt time.Time  `json:"checked_at"`
	// Stale is set when the last fetch failed and State carries the retained
	// previous value rather than a fresh observation.
	Stale     bool   `json:"stale"`
	LastError string `json:"last_error,omitempty"`
}
