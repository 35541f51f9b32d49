package dto

import (
	"math/big"
	"time"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"
)

// RequestLoanRequest is the body for POST /api/v1/loans.
// Amounts travel as decimal wei strings; uint64 JSON numbers lose precision.
type RequestLoanRequest struct {
	Amount         string `json:"amount" binding:"required,wei_amount"`
	MaxPaymentDate int64  `json:"max_payment_date" binding:"required,gt=0"`
}

// PayBackRequest is the body for POST /api/v1/loans/repayment.
type PayBackRequest struct {
	Amount string `json:"amount" binding:"required,wei_amount"`
}

// TxResponse reports a confirmed write transaction.
type TxResponse struct {
	TxHash string `json:"tx_hash"`
}

// RepaymentResponse reports the repayment outcome including whether the
// post-repayment unlock was confirmed within the attempt budget.
type RepaymentResponse struct {
	TxHash          string `json:"tx_hash"`
	UnlockConfirmed bool   `json:"unlock_confirmed"`
	State           string `json:"state"`
}

// LoanDTO is the JSON view of an on-chain loan snapshot.
type LoanDTO struct {
	PrincipalWei   string `json:"principal_wei"`
	MaxPaymentDate int64  `json:"max_payment_date"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
	IsOverdue      bool   `json:"is_overdue"`
	DaysUntilDue   int    `json:"days_until_due"`
}

// StatusResponse is the enforcement status served to the AppShell.
type StatusResponse struct {
	State     string   `json:"state"`
	Locked    bool     `json:"locked"`
	Stale     bool     `json:"stale"`
	LastError string   `json:"last_error,omitempty"`
	CheckedAt string   `json:"checked_at"`
	Loan      *LoanDTO `json:"loan,omitempty"`
}

// WalletResponse is the read-only wallet overview.
type WalletResponse struct {
	Address            string   `json:"address"`
	ChainID            uint64   `json:"chain_id"`
	BalanceWei         string   `json:"balance_wei"`
	AllowanceWei       string   `json:"allowance_wei"`
	ContractBalanceWei string   `json:"contract_balance_wei"`
	Loan               *LoanDTO `json:"loan,omitempty"`
}

// NewLoanDTO converts a domain loan, or returns nil for nil.
func NewLoanDTO(loan *domain.Loan) *LoanDTO {
	if loan == nil {
		return nil
	}
	return &LoanDTO{
		PrincipalWei:   loan.Principal.String(),
		MaxPaymentDate: loan.MaxPaymentDate,
		Status:         loan.Status.String(),
		CreatedAt:      loan.CreatedAt,
		IsOverdue:      loan.IsOverdue,
		DaysUntilDue:   loan.DaysUntilDue(time.Now()),
	}
}

// NewStatusResponse converts a published lock update.
func NewStatusResponse(update domain.LockUpdate) StatusResponse {
	return StatusResponse{
		State:     string(update.State),
		Locked:    update.State.Locked(),
		Stale:     update.Stale,
		LastError: update.LastError,
		CheckedAt: update.CheckedAt.UTC().Format(time.RFC3339),
		Loan:      NewLoanDTO(update.Loan),
	}
}

// NewWalletResponse converts the service-level overview.
func NewWalletResponse(view *ports.WalletOverview) WalletResponse {
	return WalletResponse{
		Address:            view.Identity.Address,
		ChainID:            view.Identity.ChainID,
		BalanceWei:         view.Token.Balance.String(),
		AllowanceWei:       view.Token.Allowance.String(),
		ContractBalanceWei: view.ContractBalance.String(),
		Loan:               NewLoanDTO(view.Loan),
	}
}

// ParseWei converts a validated wei string into a big.Int.
func ParseWei(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}
