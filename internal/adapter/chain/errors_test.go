package chain

import (
	"errors"
	"testing"

	"loan-enforcement-agent/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestMapReadError(t *testing.T) {
	assert.NoError(t, mapReadError(nil))

	err := mapReadError(errors.New("connection refused"))
	assert.Equal(t, apperror.CodeRPCUnavailable, apperror.CodeOf(err))
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		nodeErr  string
		wantCode string
	}{
		{"user rejected", "user rejected the request", apperror.CodeUserRejected},
		{"user denied", "MetaMask Tx Signature: User denied transaction signature", apperror.CodeUserRejected},
		{"erc20 balance", "execution reverted: ERC20InsufficientBalance(0xabc, 5, 10)", apperror.CodeInsufficientBalance},
		{"transfer exceeds balance", "execution reverted: ERC20: transfer amount exceeds balance", apperror.CodeInsufficientBalance},
		{"gas funds", "insufficient funds for gas * price + value", apperror.CodeInsufficientBalance},
		{"erc20 allowance", "execution reverted: ERC20InsufficientAllowance(0xdef, 0, 10)", apperror.CodeInsufficientAllowance},
		{"allowance text", "execution reverted: insufficient allowance", apperror.CodeInsufficientAllowance},
		{"active loan", "execution reverted: Borrower already has an active loan", apperror.CodeAlreadyHasActiveLoan},
		{"generic revert", "execution reverted: loan amount exceeds pool", apperror.CodeContractReverted},
		{"transport", "dial tcp: i/o timeout", apperror.CodeRPCUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapWriteError(errors.New(tt.nodeErr))
			assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
		})
	}
}

func TestMapWriteError_KeepsRevertReason(t *testing.T) {
	err := mapWriteError(errors.New("execution reverted: loan amount exceeds pool"))
	assert.Contains(t, err.Error(), "loan amount exceeds pool")
}

func TestRevertReason(t *testing.T) {
	assert.Equal(t, "not enough collateral", revertReason("execution reverted: not enough collateral"))
	assert.Equal(t, "", revertReason("execution reverted"))
	assert.Equal(t, "", revertReason("some other error"))
}
