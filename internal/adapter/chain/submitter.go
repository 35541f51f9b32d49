package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"loan-enforcement-agent/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// gas headroom applied on top of the node's estimate.
const gasMargin = 120

// receiptPollInterval is how often WaitMined polls for a receipt.
const receiptPollInterval = 2 * time.Second

// Submitter signs and broadcasts loan contract writes with the embedded
// wallet. Nonce management relies on the pending nonce; the agent is the only
// writer for its account.
type Submitter struct {
	backend   Backend
	wallet    *EmbeddedWallet
	loanAddr  common.Address
	tokenAddr common.Address
	log       zerolog.Logger
}

// NewSubmitter creates a transaction submitter for the loan and token contracts.
func NewSubmitter(backend Backend, wallet *EmbeddedWallet, loanContract, tokenAddress string, log zerolog.Logger) *Submitter {
	return &Submitter{
		backend:   backend,
		wallet:    wallet,
		loanAddr:  common.HexToAddress(loanContract),
		tokenAddr: common.HexToAddress(tokenAddress),
		log:       log,
	}
}

// SubmitRequestLoan broadcasts requestLoan(amount, maxPaymentDate).
func (s *Submitter) SubmitRequestLoan(ctx context.Context, amount *big.Int, maxPaymentDate int64) (string, error) {
	data, err := loanABI.Pack("requestLoan", amount, big.NewInt(maxPaymentDate))
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("packing requestLoan: %w", err))
	}
	return s.submit(ctx, s.loanAddr, data, "requestLoan")
}

// SubmitApprove broadcasts approve(loanContract, amount) on the token.
func (s *Submitter) SubmitApprove(ctx context.Context, amount *big.Int) (string, error) {
	data, err := tokenABI.Pack("approve", s.loanAddr, amount)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("packing approve: %w", err))
	}
	return s.submit(ctx, s.tokenAddr, data, "approve")
}

// SubmitPayBack broadcasts payBackLoan(amount).
func (s *Submitter) SubmitPayBack(ctx context.Context, amount *big.Int) (string, error) {
	data, err := loanABI.Pack("payBackLoan", amount)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("packing payBackLoan: %w", err))
	}
	return s.submit(ctx, s.loanAddr, data, "payBackLoan")
}

// submit builds, signs and broadcasts a single transaction. Gas estimation
// runs first so contract reverts surface as classified errors before anything
// hits the mempool.
func (s *Submitter) submit(ctx context.Context, to common.Address, data []byte, label string) (string, error) {
	from := s.wallet.Address()

	nonce, err := s.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", apperror.ErrRPCUnavailable(err)
	}

	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", apperror.ErrRPCUnavailable(err)
	}

	gasLimit, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return "", mapWriteError(err)
	}
	gasLimit = gasLimit * gasMargin / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := s.wallet.SignTx(tx)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return "", mapWriteError(err)
	}

	hash := signed.Hash().Hex()
	s.log.Info().
		Str("method", label).
		Str("tx_hash", hash).
		Uint64("nonce", nonce).
		Msg("transaction broadcast")
	return hash, nil
}

// WaitMined blocks until the transaction has a receipt or ctx expires. A
// receipt with a failed status is reported as a contract revert.
func (s *Submitter) WaitMined(ctx context.Context, txHash string) error {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return apperror.ErrContractReverted("", fmt.Errorf("transaction %s reverted on-chain", txHash))
			}
			s.log.Info().
				Str("tx_hash", txHash).
				Uint64("block", receipt.BlockNumber.Uint64()).
				Msg("transaction mined")
			return nil
		case errors.Is(err, ethereum.NotFound):
			// Not mined yet, keep polling.
		default:
			return apperror.ErrRPCUnavailable(err)
		}

		select {
		case <-ctx.Done():
			return apperror.ErrRPCUnavailable(ctx.Err())
		case <-ticker.C:
		}
	}
}
