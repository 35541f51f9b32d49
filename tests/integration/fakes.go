package integration

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/pkg/apperror"
)

// fakeChain is a stateful in-memory stand-in for the loan and token
// contracts. Reads observe the current state; the fake submitter mutates it
// the way mined transactions would.
type fakeChain struct {
	mu        sync.Mutex
	loan      *domain.Loan
	balance   *big.Int
	allowance *big.Int
	pool      *big.Int
	rpcDown   bool
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		balance:   big.NewInt(0),
		allowance: big.NewInt(0),
		pool:      big.NewInt(1_000_000_000),
	}
}

func (f *fakeChain) setRPCDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rpcDown = down
}

func (f *fakeChain) setLoan(loan *domain.Loan) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loan = loan
}

func (f *fakeChain) GetActiveLoan(_ context.Context, _ string) (*domain.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rpcDown {
		return nil, rpcDownErr()
	}
	if f.loan == nil {
		return nil, nil
	}
	cp := *f.loan
	return &cp, nil
}

func (f *fakeChain) GetTokenInfo(_ context.Context, _ string) (*domain.TokenInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rpcDown {
		return nil, rpcDownErr()
	}
	return &domain.TokenInfo{
		Balance:   new(big.Int).Set(f.balance),
		Allowance: new(big.Int).Set(f.allowance),
	}, nil
}

func (f *fakeChain) GetContractBalance(_ context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rpcDown {
		return nil, rpcDownErr()
	}
	return new(big.Int).Set(f.pool), nil
}

func (f *fakeChain) HasActiveLoan(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rpcDown {
		return false, rpcDownErr()
	}
	return f.loan != nil && !f.loan.Status.Terminal(), nil
}

// fakeSubmitter applies writes to the fake chain with instant mining.
type fakeSubmitter struct {
	chain *fakeChain
	// broadcasts counts real submissions, used to assert idempotent retries
	// never hit the chain twice.
	mu         sync.Mutex
	broadcasts int
}

func (s *fakeSubmitter) countBroadcast() {
	s.mu.Lock()
	s.broadcasts++
	s.mu.Unlock()
}

func (s *fakeSubmitter) broadcastCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.broadcasts
}

func (s *fakeSubmitter) SubmitRequestLoan(_ context.Context, amount *big.Int, maxPaymentDate int64) (string, error) {
	s.countBroadcast()
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	s.chain.loan = &domain.Loan{
		Principal:      new(big.Int).Set(amount),
		MaxPaymentDate: maxPaymentDate,
		Status:         domain.LoanStatusActive,
	}
	s.chain.balance.Add(s.chain.balance, amount)
	s.chain.pool.Sub(s.chain.pool, amount)
	return "0xrequest", nil
}

func (s *fakeSubmitter) SubmitApprove(_ context.Context, amount *big.Int) (string, error) {
	s.countBroadcast()
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	s.chain.allowance = new(big.Int).Set(amount)
	return "0xapprove", nil
}

func (s *fakeSubmitter) SubmitPayBack(_ context.Context, amount *big.Int) (string, error) {
	s.countBroadcast()
	s.chain.mu.Lock()
	defer s.chain.mu.Unlock()
	if s.chain.allowance.Cmp(amount) < 0 {
		return "", apperror.ErrInsufficientAllowance()
	}
	s.chain.balance.Sub(s.chain.balance, amount)
	s.chain.loan.Status = domain.LoanStatusPaid
	s.chain.loan.IsOverdue = false
	return "0xpay", nil
}

func (s *fakeSubmitter) WaitMined(_ context.Context, _ string) error { return nil }

// fakeWallet is a correctly bound wallet identity.
type fakeWallet struct {
	address string
	chainID uint64
}

func (w *fakeWallet) Identity() domain.WalletIdentity {
	return domain.WalletIdentity{Address: w.address, ChainID: w.chainID}
}
func (w *fakeWallet) EnsureNetwork(context.Context) error { return nil }
func (w *fakeWallet) SwitchNetwork(context.Context) error { return nil }

// recordingBridge counts pinning calls.
type recordingBridge struct {
	mu      sync.Mutex
	pins    int
	unpins  int
	pinned  bool
}

func (b *recordingBridge) StartPinning(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pins++
	b.pinned = true
	return nil
}

func (b *recordingBridge) StopPinning(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unpins++
	b.pinned = false
	return nil
}

func (b *recordingBridge) DisableExitGesture(context.Context) error { return nil }
func (b *recordingBridge) EnableExitGesture(context.Context) error  { return nil }

func (b *recordingBridge) isPinned() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pinned
}

func (b *recordingBridge) pinCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pins
}

func rpcDownErr() error {
	return apperror.ErrRPCUnavailable(errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"))
}
