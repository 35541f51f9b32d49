package chain

import (
	"context"
	"fmt"
	"math/big"

	"loan-enforcement-agent/internal/core/domain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// Reader implements ports.ChainReader with plain eth_call reads. It carries
// no signing key and is safe for concurrent use.
type Reader struct {
	backend  Backend
	loanAddr common.Address
	tokenAddr common.Address
	log      zerolog.Logger
}

// NewReader creates a signer-free contract reader.
func NewReader(backend Backend, loanContract, tokenAddress string, log zerolog.Logger) *Reader {
	return &Reader{
		backend:   backend,
		loanAddr:  common.HexToAddress(loanContract),
		tokenAddr: common.HexToAddress(tokenAddress),
		log:       log,
	}
}

// GetActiveLoan returns the loan snapshot for address, or nil when the
// contract reports a zero principal.
func (r *Reader) GetActiveLoan(ctx context.Context, address string) (*domain.Loan, error) {
	out, err := r.call(ctx, r.loanAddr, loanABI, "getActiveLoan", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, mapReadError(fmt.Errorf("getActiveLoan: unexpected output arity %d", len(out)))
	}

	principal, ok := out[0].(*big.Int)
	if !ok {
		return nil, mapReadError(fmt.Errorf("getActiveLoan: bad principal type %T", out[0]))
	}
	if principal.Sign() == 0 {
		return nil, nil
	}

	maxPaymentDate, _ := out[1].(*big.Int)
	status, ok := out[2].(uint8)
	if !ok {
		// A zero-value fallback here would read as Active, an unlocked status.
		return nil, mapReadError(fmt.Errorf("getActiveLoan: bad status type %T", out[2]))
	}
	createdAt, _ := out[3].(*big.Int)
	isOverdue, _ := out[4].(bool)
	if maxPaymentDate == nil || createdAt == nil {
		return nil, mapReadError(fmt.Errorf("getActiveLoan: missing timestamp fields"))
	}

	return &domain.Loan{
		Principal:      principal,
		MaxPaymentDate: maxPaymentDate.Int64(),
		Status:         domain.LoanStatus(status),
		CreatedAt:      createdAt.Int64(),
		IsOverdue:      isOverdue,
	}, nil
}

// GetTokenInfo returns the wallet's token balance and the allowance granted
// to the loan contract.
func (r *Reader) GetTokenInfo(ctx context.Context, address string) (*domain.TokenInfo, error) {
	owner := common.HexToAddress(address)

	balOut, err := r.call(ctx, r.tokenAddr, tokenABI, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	allowOut, err := r.call(ctx, r.tokenAddr, tokenABI, "allowance", owner, r.loanAddr)
	if err != nil {
		return nil, err
	}

	balance, ok1 := balOut[0].(*big.Int)
	allowance, ok2 := allowOut[0].(*big.Int)
	if !ok1 || !ok2 {
		return nil, mapReadError(fmt.Errorf("token reads returned unexpected types"))
	}

	return &domain.TokenInfo{Balance: balance, Allowance: allowance}, nil
}

// GetContractBalance returns the funds the loan contract can still lend.
func (r *Reader) GetContractBalance(ctx context.Context) (*big.Int, error) {
	out, err := r.call(ctx, r.loanAddr, loanABI, "getContractBalance")
	if err != nil {
		return nil, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, mapReadError(fmt.Errorf("getContractBalance: bad output type %T", out[0]))
	}
	return balance, nil
}

// HasActiveLoan is the cheap eligibility check used before requestLoan.
func (r *Reader) HasActiveLoan(ctx context.Context, address string) (bool, error) {
	out, err := r.call(ctx, r.loanAddr, loanABI, "hasActiveLoanStatus", common.HexToAddress(address))
	if err != nil {
		return false, err
	}
	has, ok := out[0].(bool)
	if !ok {
		return false, mapReadError(fmt.Errorf("hasActiveLoanStatus: bad output type %T", out[0]))
	}
	return has, nil
}

// call packs, executes and unpacks a single eth_call.
func (r *Reader) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", method, err)
	}

	raw, err := r.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		r.log.Debug().Err(err).Str("method", method).Msg("eth_call failed")
		return nil, mapReadError(err)
	}

	out, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, mapReadError(fmt.Errorf("unpacking %s: %w", method, err))
	}
	return out, nil
}
