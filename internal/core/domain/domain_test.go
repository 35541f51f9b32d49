package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextState_Transitions(t *testing.T) {
	cases := []struct {
		name string
		loan *Loan
		want LockState
	}{
		{"no loan", nil, LockStateNoLoan},
		{"active", &Loan{Status: LoanStatusActive}, LockStateActiveOK},
		{"paid", &Loan{Status: LoanStatusPaid}, LockStateActiveOK},
		{"overdue", &Loan{Status: LoanStatusOverdue}, LockStateOverdue},
		{"defaulted", &Loan{Status: LoanStatusDefaulted}, LockStateDefaulted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextState(tc.loan))
		})
	}
}

func TestNextState_ContractOverdueFlagDoesNotLockActive(t *testing.T) {
	// The contract may flag a loan overdue before transitioning its status;
	// enforcement follows the status, not the flag.
	loan := &Loan{Status: LoanStatusActive, IsOverdue: true}
	assert.Equal(t, LockStateActiveOK, NextState(loan))
}

func TestLockState_Predicates(t *testing.T) {
	assert.True(t, LockStateOverdue.Locked())
	assert.True(t, LockStateDefaulted.Locked())
	assert.False(t, LockStateActiveOK.Locked())
	assert.False(t, LockStateNoLoan.Locked())

	assert.True(t, LockStateActiveOK.Unlocked())
	assert.True(t, LockStateNoLoan.Unlocked())
	assert.False(t, LockStateOverdue.Unlocked())

	// Unknown must be neither: never pin on it, never release on it.
	assert.False(t, LockStateUnknown.Locked())
	assert.False(t, LockStateUnknown.Unlocked())
}

func TestLoanStatus_String(t *testing.T) {
	assert.Equal(t, "Active", LoanStatusActive.String())
	assert.Equal(t, "Overdue", LoanStatusOverdue.String())
	assert.Equal(t, "Paid", LoanStatusPaid.String())
	assert.Equal(t, "Defaulted", LoanStatusDefaulted.String())
	assert.Equal(t, "Unknown", LoanStatus(99).String())
}

func TestLoanStatus_Terminal(t *testing.T) {
	assert.False(t, LoanStatusActive.Terminal())
	assert.False(t, LoanStatusOverdue.Terminal())
	assert.True(t, LoanStatusPaid.Terminal())
	assert.True(t, LoanStatusDefaulted.Terminal())
}

func TestLoan_DaysUntilDue(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	future := &Loan{MaxPaymentDate: now.Add(72 * time.Hour).Unix()}
	assert.Equal(t, 3, future.DaysUntilDue(now))

	// A partial day still counts as a day owed.
	partial := &Loan{MaxPaymentDate: now.Add(25 * time.Hour).Unix()}
	assert.Equal(t, 2, partial.DaysUntilDue(now))

	soon := &Loan{MaxPaymentDate: now.Add(time.Minute).Unix()}
	assert.Equal(t, 1, soon.DaysUntilDue(now))

	past := &Loan{MaxPaymentDate: now.Add(-48 * time.Hour).Unix()}
	assert.Equal(t, -2, past.DaysUntilDue(now))
}

func TestTokenInfo_NeedsApproval(t *testing.T) {
	info := &TokenInfo{
		Balance:   big.NewInt(1000),
		Allowance: big.NewInt(50),
	}
	assert.True(t, info.NeedsApproval(big.NewInt(100)))
	assert.False(t, info.NeedsApproval(big.NewInt(50)))
	assert.False(t, info.NeedsApproval(big.NewInt(10)))
	assert.False(t, info.NeedsApproval(nil))
}
