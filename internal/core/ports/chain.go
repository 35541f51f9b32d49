package ports

import (
	"context"
	"math/big"

	"loan-enforcement-agent/internal/core/domain"
)

// ChainReader provides signer-free reads against the configured chain. All
// methods are safe for concurrent use. Transient RPC failures are returned as
// apperror.CodeRPCUnavailable so callers can apply fail-safe policy.
type ChainReader interface {
	// GetActiveLoan returns the loan snapshot for address, or nil when the
	// contract reports a zero principal (no active loan).
	GetActiveLoan(ctx context.Context, address string) (*domain.Loan, error)

	// GetTokenInfo returns the wallet's token balance and the allowance
	// granted to the loan contract.
	GetTokenInfo(ctx context.Context, address string) (*domain.TokenInfo, error)

	// GetContractBalance returns the funds the contract has available for new loans.
	GetContractBalance(ctx context.Context) (*big.Int, error)

	// HasActiveLoan is the cheap boolean eligibility check.
	HasActiveLoan(ctx context.Context, address string) (bool, error)
}

// Wallet is the embedded-wallet signing identity. The wallet is bound to one
// chain at creation; EnsureNetwork performs at most one best-effort switch
// attempt before reporting a permanent mismatch.
type Wallet interface {
	Identity() domain.WalletIdentity

	// EnsureNetwork fails with apperror.CodeNetworkMismatch when the wallet's
	// chain id does not equal the configured target chain id.
	EnsureNetwork(ctx context.Context) error

	// SwitchNetwork runs the single best-effort switch attempt on demand.
	// Repeated calls after a failed attempt return the latched mismatch error.
	SwitchNetwork(ctx context.Context) error
}

// TxSubmitter signs and broadcasts the contract writes. Each Submit* call
// returns the broadcast transaction hash; WaitMined blocks until the receipt
// is available and fails when the transaction reverted on-chain.
type TxSubmitter interface {
	SubmitRequestLoan(ctx context.Context, amount *big.Int, maxPaymentDate int64) (string, error)
	SubmitApprove(ctx context.Context, amount *big.Int) (string, error)
	SubmitPayBack(ctx context.Context, amount *big.Int) (string, error)
	WaitMined(ctx context.Context, txHash string) error
}
