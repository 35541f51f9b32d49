package ports

import (
	"context"
	"math/big"

	"loan-enforcement-agent/internal/core/domain"
)

// LoanService is the only component allowed to submit write transactions.
type LoanService interface {
	// RequestLoan submits a single loan-request write and waits for its
	// receipt. A contract revert caused by an existing loan surfaces as
	// apperror.CodeAlreadyHasActiveLoan.
	RequestLoan(ctx context.Context, amount *big.Int, maxPaymentDate int64) (string, error)

	// PayBackLoan runs the strictly sequential two-phase repayment: when the
	// current allowance is short, an approve write is submitted and mined
	// before the payment write is broadcast.
	PayBackLoan(ctx context.Context, amount *big.Int) (string, error)

	// WalletOverview collects the wallet identity and token/contract balances.
	WalletOverview(ctx context.Context) (*WalletOverview, error)

	// SwitchNetwork triggers the wallet's single best-effort network switch.
	SwitchNetwork(ctx context.Context) error
}

// WalletOverview aggregates the read-only wallet view served to the AppShell.
type WalletOverview struct {
	Identity        domain.WalletIdentity
	Token           *domain.TokenInfo
	ContractBalance *big.Int
	Loan            *domain.Loan
}

// LoanMonitor is the polling state machine that owns the published lock state.
type LoanMonitor interface {
	// Start launches the poll loop; it runs until ctx is cancelled or Stop is called.
	Start(ctx context.Context)
	Stop()

	// Snapshot returns the last published value without touching the chain.
	Snapshot() domain.LockUpdate

	// ForceCheck schedules an immediate out-of-cadence check. Triggers issued
	// while a check is in flight are coalesced.
	ForceCheck()

	// CheckNow fetches and publishes synchronously, serialized with the poll
	// loop so a slower stale result can never overwrite a newer one.
	CheckNow(ctx context.Context) (domain.LockUpdate, error)

	// AwaitUnlock polls after a repayment until the published state leaves the
	// locked set or the attempt budget is exhausted. It returns false, with no
	// error, when confirmation is still pending.
	AwaitUnlock(ctx context.Context) (bool, error)

	// Subscribe registers a callback invoked on every published update.
	// Callbacks run on the monitor goroutine and must not block.
	Subscribe(fn func(domain.LockUpdate))
}

// LockController translates lock decisions into the device-pinning API.
type LockController interface {
	// ApplyState enforces the decision. Re-applying the same locked decision
	// re-invokes the pinning sequence on purpose.
	ApplyState(ctx context.Context, state domain.LockState) error

	// OnForeground re-asserts the lock when the app returns to the foreground.
	OnForeground(ctx context.Context) error
}

// TokenService validates session tokens issued by the identity provider.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	Address string // wallet address the session is bound to
}

// AuditService journals enforcement events (fire-and-forget).
type AuditService interface {
	Record(ctx context.Context, event *domain.EnforcementEvent)
}

// Notifier pushes lock-state transitions to the AppShell callback, if configured.
type Notifier interface {
	NotifyStateChange(update domain.LockUpdate)
}
