package handler

import (
	"loan-enforcement-agent/internal/adapter/http/dto"
	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/pkg/apperror"
	"loan-enforcement-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// LoanHandler serves the loan write operations and the wallet overview.
type LoanHandler struct {
	loanSvc ports.LoanService
	monitor ports.LoanMonitor
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanSvc ports.LoanService, monitor ports.LoanMonitor) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc, monitor: monitor}
}

// RequestLoan handles POST /api/v1/loans.
func (h *LoanHandler) RequestLoan(c *gin.Context) {
	var req dto.RequestLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid loan request: amount must be a positive wei string"))
		return
	}

	hash, err := h.loanSvc.RequestLoan(c.Request.Context(), dto.ParseWei(req.Amount), req.MaxPaymentDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.monitor.ForceCheck()
	response.Created(c, dto.TxResponse{TxHash: hash})
}

// PayBackLoan handles POST /api/v1/loans/repayment. After the payment is
// mined the monitor re-checks immediately and the response reports whether
// the unlock was confirmed within the attempt budget.
func (h *LoanHandler) PayBackLoan(c *gin.Context) {
	var req dto.PayBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid repayment request: amount must be a positive wei string"))
		return
	}

	hash, err := h.loanSvc.PayBackLoan(c.Request.Context(), dto.ParseWei(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	confirmed, err := h.monitor.AwaitUnlock(c.Request.Context())
	if err != nil {
		// Payment succeeded; confirmation was interrupted. The poll loop
		// finishes the job, so report the payment rather than failing.
		confirmed = false
	}

	response.OK(c, dto.RepaymentResponse{
		TxHash:          hash,
		UnlockConfirmed: confirmed,
		State:           string(h.monitor.Snapshot().State),
	})
}

// GetWallet handles GET /api/v1/wallet.
func (h *LoanHandler) GetWallet(c *gin.Context) {
	view, err := h.loanSvc.WalletOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletResponse(view))
}

// SwitchNetwork handles POST /api/v1/wallet/switch-network.
func (h *LoanHandler) SwitchNetwork(c *gin.Context) {
	if err := h.loanSvc.SwitchNetwork(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"switched": true})
}
