package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/internal/observability"
	"loan-enforcement-agent/pkg/apperror"

	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// cachedSubmission is the idempotency cache payload for a completed write.
type cachedSubmission struct {
	TxHash string `json:"tx_hash"`
}

// LoanServiceImpl implements ports.LoanService. It is the only component that
// broadcasts write transactions; the monitor and handlers stay read-only.
type LoanServiceImpl struct {
	reader    ports.ChainReader
	wallet    ports.Wallet
	submitter ports.TxSubmitter
	idemCache ports.IdempotencyCache
	audit     ports.AuditService
	metrics   *observability.Metrics
	log       zerolog.Logger
}

// NewLoanService creates a new LoanServiceImpl. audit and metrics may be nil.
func NewLoanService(
	reader ports.ChainReader,
	wallet ports.Wallet,
	submitter ports.TxSubmitter,
	idemCache ports.IdempotencyCache,
	audit ports.AuditService,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *LoanServiceImpl {
	return &LoanServiceImpl{
		reader:    reader,
		wallet:    wallet,
		submitter: submitter,
		idemCache: idemCache,
		audit:     audit,
		metrics:   metrics,
		log:       log,
	}
}

// RequestLoan submits a single loan-request write and waits for its receipt.
func (s *LoanServiceImpl) RequestLoan(ctx context.Context, amount *big.Int, maxPaymentDate int64) (string, error) {
	if amount == nil || amount.Sign() <= 0 {
		return "", apperror.Validation("loan amount must be positive")
	}
	if err := s.wallet.EnsureNetwork(ctx); err != nil {
		return "", err
	}

	address := s.wallet.Identity().Address
	idemKey := fmt.Sprintf("request:%s:%s:%d", address, amount.String(), maxPaymentDate)
	if hash, ok := s.cachedHash(ctx, idemKey); ok {
		s.log.Info().Str("tx_hash", hash).Msg("loan request replayed from idempotency cache")
		return hash, nil
	}

	// Cheap eligibility checks before spending gas. The contract enforces
	// both again, so races just surface as classified reverts.
	has, err := s.reader.HasActiveLoan(ctx, address)
	if err != nil {
		return "", err
	}
	if has {
		return "", apperror.ErrAlreadyHasActiveLoan()
	}

	pool, err := s.reader.GetContractBalance(ctx)
	if err != nil {
		return "", err
	}
	if pool.Cmp(amount) < 0 {
		return "", apperror.ErrContractReverted("loan amount exceeds available pool", nil)
	}

	hash, err := s.submitter.SubmitRequestLoan(ctx, amount, maxPaymentDate)
	if err != nil {
		return "", err
	}
	s.journalTx(address, domain.ActionTxSubmitted, hash, "requestLoan")

	if err := s.submitter.WaitMined(ctx, hash); err != nil {
		return "", err
	}
	s.journalTx(address, domain.ActionTxConfirmed, hash, "requestLoan")

	s.storeHash(ctx, idemKey, hash)
	return hash, nil
}

// PayBackLoan runs the strictly sequential two-phase repayment. When the
// current allowance is short, an approve write is submitted and mined before
// the payment write is broadcast; the phases never overlap.
func (s *LoanServiceImpl) PayBackLoan(ctx context.Context, amount *big.Int) (string, error) {
	if amount == nil || amount.Sign() <= 0 {
		return "", apperror.Validation("payment amount must be positive")
	}
	if err := s.wallet.EnsureNetwork(ctx); err != nil {
		return "", err
	}

	address := s.wallet.Identity().Address

	loan, err := s.reader.GetActiveLoan(ctx, address)
	if err != nil {
		return "", err
	}
	if loan == nil {
		return "", apperror.ErrContractReverted("no active loan to repay", nil)
	}

	// The key carries the loan's creation time so retries of this payment
	// replay the cached hash, while an equal-sized payment on a later loan is
	// a fresh broadcast.
	idemKey := fmt.Sprintf("payback:%s:%s:%d", address, amount.String(), loan.CreatedAt)
	if hash, ok := s.cachedHash(ctx, idemKey); ok {
		s.log.Info().Str("tx_hash", hash).Msg("repayment replayed from idempotency cache")
		return hash, nil
	}

	info, err := s.reader.GetTokenInfo(ctx, address)
	if err != nil {
		return "", err
	}
	if info.Balance.Cmp(amount) < 0 {
		return "", apperror.ErrInsufficientBalance()
	}

	if info.NeedsApproval(amount) {
		if err := s.approve(ctx, address, amount); err != nil {
			return "", err
		}
	}

	hash, err := s.submitter.SubmitPayBack(ctx, amount)
	if err != nil {
		return "", err
	}
	s.journalTx(address, domain.ActionTxSubmitted, hash, "payBackLoan")

	if err := s.submitter.WaitMined(ctx, hash); err != nil {
		return "", err
	}
	s.journalTx(address, domain.ActionTxConfirmed, hash, "payBackLoan")

	s.storeHash(ctx, idemKey, hash)
	return hash, nil
}

// approve submits the allowance write and blocks until it is mined. Any
// failure in this phase is an approval failure, not a payment failure.
func (s *LoanServiceImpl) approve(ctx context.Context, address string, amount *big.Int) error {
	hash, err := s.submitter.SubmitApprove(ctx, amount)
	if err != nil {
		return s.asApprovalError(err)
	}
	s.journalTx(address, domain.ActionTxSubmitted, hash, "approve")

	if err := s.submitter.WaitMined(ctx, hash); err != nil {
		return s.asApprovalError(err)
	}
	s.journalTx(address, domain.ActionTxConfirmed, hash, "approve")
	return nil
}

// asApprovalError keeps taxonomy codes that already say what went wrong and
// folds anonymous reverts into the approval failure code.
func (s *LoanServiceImpl) asApprovalError(err error) error {
	if apperror.HasCode(err, apperror.CodeContractReverted) {
		return apperror.ErrInsufficientAllowance()
	}
	return err
}

// WalletOverview collects the wallet identity and token/contract balances.
func (s *LoanServiceImpl) WalletOverview(ctx context.Context) (*ports.WalletOverview, error) {
	identity := s.wallet.Identity()

	info, err := s.reader.GetTokenInfo(ctx, identity.Address)
	if err != nil {
		return nil, err
	}
	pool, err := s.reader.GetContractBalance(ctx)
	if err != nil {
		return nil, err
	}
	loan, err := s.reader.GetActiveLoan(ctx, identity.Address)
	if err != nil {
		return nil, err
	}

	return &ports.WalletOverview{
		Identity:        identity,
		Token:           info,
		ContractBalance: pool,
		Loan:            loan,
	}, nil
}

// SwitchNetwork triggers the wallet's single best-effort network switch.
func (s *LoanServiceImpl) SwitchNetwork(ctx context.Context) error {
	address := s.wallet.Identity().Address
	s.journalTx(address, domain.ActionSwitchAttempt, "", "wallet_switchEthereumChain")
	return s.wallet.SwitchNetwork(ctx)
}

func (s *LoanServiceImpl) cachedHash(ctx context.Context, key string) (string, bool) {
	if s.idemCache == nil {
		return "", false
	}
	raw, err := s.idemCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency check failed, proceeding without dedupe")
		return "", false
	}
	if raw == nil {
		return "", false
	}
	var cached cachedSubmission
	if err := json.Unmarshal(raw, &cached); err != nil {
		return "", false
	}
	return cached.TxHash, true
}

func (s *LoanServiceImpl) storeHash(ctx context.Context, key, hash string) {
	if s.idemCache == nil {
		return
	}
	raw, err := json.Marshal(cachedSubmission{TxHash: hash})
	if err != nil {
		return
	}
	if err := s.idemCache.Set(ctx, key, raw, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to store idempotency record")
	}
}

func (s *LoanServiceImpl) journalTx(address string, action domain.EnforcementAction, hash, method string) {
	if s.metrics != nil {
		switch action {
		case domain.ActionTxSubmitted:
			s.metrics.ObserveTx(method, "submitted")
		case domain.ActionTxConfirmed:
			s.metrics.ObserveTx(method, "confirmed")
		}
	}
	if s.audit == nil {
		return
	}
	event := domain.NewEnforcementEvent(address, action)
	event.TxHash = hash
	event.Details = fmt.Sprintf(`{"method":%q}`, method)
	s.audit.Record(context.Background(), event)
}
