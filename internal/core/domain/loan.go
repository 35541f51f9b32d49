package domain

import (
	"math"
	"math/big"
	"time"
)

// LoanStatus mirrors the loan contract's status enum.
type LoanStatus uint8

const (
	LoanStatusActive    LoanStatus = 0 // funded, can be repaid
	LoanStatusOverdue   LoanStatus = 1 // past due date, can still be repaid
	LoanStatusPaid      LoanStatus = 2 // fully repaid
	LoanStatusDefaulted LoanStatus = 3 // swept into default by the contract
)

// String returns the human-readable status text.
func (s LoanStatus) String() string {
	switch s {
	case LoanStatusActive:
		return "Active"
	case LoanStatusOverdue:
		return "Overdue"
	case LoanStatusPaid:
		return "Paid"
	case LoanStatusDefaulted:
		return "Defaulted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status can no longer transition on-chain.
func (s LoanStatus) Terminal() bool {
	return s == LoanStatusPaid || s == LoanStatusDefaulted
}

// Loan is the authoritative on-chain loan snapshot for one wallet address.
// The contract is the only writer; the agent observes and reacts.
type Loan struct {
	Principal      *big.Int   `json:"principal_wei"`
	MaxPaymentDate int64      `json:"max_payment_date"` // unix seconds
	Status         LoanStatus `json:"status"`
	CreatedAt      int64      `json:"created_at"` // unix seconds
	// IsOverdue is computed by the contract and may be true while Status is
	// still Active, before the contract has transitioned.
	IsOverdue bool `json:"is_overdue"`
}

// DaysUntilDue returns whole days until the max payment date, rounding a
// partial day up; negative when past due.
func (l *Loan) DaysUntilDue(now time.Time) int {
	due := time.Unix(l.MaxPaymentDate, 0)
	d := due.Sub(now).Hours() / 24
	if d < 0 {
		return int(d)
	}
	return int(math.Ceil(d))
}

// TokenInfo is the derived ERC20 balance/allowance view for one wallet.
type TokenInfo struct {
	Balance   *big.Int `json:"balance_wei"`
	Allowance *big.Int `json:"allowance_wei"`
}

// NeedsApproval reports whether the current allowance cannot cover amount.
func (t *TokenInfo) NeedsApproval(amount *big.Int) bool {
	if amount == nil {
		return false
	}
	return t.Allowance.Cmp(amount) < 0
}

// WalletIdentity describes the embedded wallet's binding. The chain id is
// fixed at wallet creation and cannot be migrated.
type WalletIdentity struct {
	Address string `json:"address"`
	ChainID uint64 `json:"chain_id"`
}
