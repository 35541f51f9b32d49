package service

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeChain is a stateful in-memory chain: reads observe the current loan,
// writes mutate it the way the deployed contracts would.
type fakeChain struct {
	mu        sync.Mutex
	loan      *domain.Loan
	balance   *big.Int
	allowance *big.Int
}

func (f *fakeChain) GetActiveLoan(_ context.Context, _ string) (*domain.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loan == nil {
		return nil, nil
	}
	cp := *f.loan
	return &cp, nil
}

func (f *fakeChain) GetTokenInfo(_ context.Context, _ string) (*domain.TokenInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.TokenInfo{
		Balance:   new(big.Int).Set(f.balance),
		Allowance: new(big.Int).Set(f.allowance),
	}, nil
}

func (f *fakeChain) GetContractBalance(_ context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeChain) HasActiveLoan(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loan != nil && !f.loan.Status.Terminal(), nil
}

// fakeSubmitter mutates the fake chain on broadcast, mimicking instant mining.
type fakeSubmitter struct {
	chain *fakeChain
}

func (s *fakeSubmitter) SubmitRequestLoan(_ context.Context, amount *big.Int, maxPaymentDate int64) (string, error) {
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	s.chain.loan = &domain.Loan{
		Principal:      new(big.Int).Set(amount),
		MaxPaymentDate: maxPaymentDate,
		Status:         domain.LoanStatusActive,
	}
	return "0xrequest", nil
}

func (s *fakeSubmitter) SubmitApprove(_ context.Context, amount *big.Int) (string, error) {
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	s.chain.allowance = new(big.Int).Set(amount)
	return "0xapprove", nil
}

func (s *fakeSubmitter) SubmitPayBack(_ context.Context, amount *big.Int) (string, error) {
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	if s.chain.allowance.Cmp(amount) < 0 {
		panic("payment broadcast before approval was mined")
	}
	s.chain.balance.Sub(s.chain.balance, amount)
	s.chain.loan.Status = domain.LoanStatusPaid
	s.chain.loan.IsOverdue = false
	return "0xpay", nil
}

func (s *fakeSubmitter) WaitMined(_ context.Context, _ string) error { return nil }

// TestEnforcementFlow_OverdueRepayUnlock walks the full lifecycle: an overdue
// loan locks the device, repayment runs approve before payment, and the
// post-repayment confirmation releases the lock within the attempt budget.
func TestEnforcementFlow_OverdueRepayUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	principal := big.NewInt(50_000_000)
	chain := &fakeChain{
		loan: &domain.Loan{
			Principal:      principal,
			MaxPaymentDate: 1_700_000_000,
			Status:         domain.LoanStatusOverdue,
			IsOverdue:      true,
		},
		balance:   big.NewInt(75_000_000),
		allowance: big.NewInt(0),
	}

	bridge := mocks.NewMockPinningBridge(ctrl)
	lockCtl := NewLockController(bridge, nil, testAddress, zerolog.Nop())

	monitor := NewMonitorService(chain, testAddress, testMonitorConfig(), nil, nil, zerolog.Nop())
	monitor.Subscribe(func(u domain.LockUpdate) {
		_ = lockCtl.ApplyState(ctx, u.State)
	})

	wallet := mocks.NewMockWallet(ctrl)
	wallet.EXPECT().EnsureNetwork(gomock.Any()).Return(nil).AnyTimes()
	wallet.EXPECT().Identity().Return(domain.WalletIdentity{Address: testAddress, ChainID: 421614}).AnyTimes()

	loanSvc := NewLoanService(chain, wallet, &fakeSubmitter{chain: chain}, nil, nil, nil, zerolog.Nop())

	// Overdue loan observed: device pins.
	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil)

	update, err := monitor.CheckNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LockStateOverdue, update.State)

	// Repayment: approve is mined before the payment broadcast (the fake
	// submitter panics otherwise), then confirmation releases the lock.
	bridge.EXPECT().StopPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().EnableExitGesture(gomock.Any()).Return(nil)

	hash, err := loanSvc.PayBackLoan(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, "0xpay", hash)

	confirmed, err := monitor.AwaitUnlock(ctx)
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, domain.LockStateActiveOK, monitor.Snapshot().State)
}
