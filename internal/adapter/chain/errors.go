package chain

import (
	"strings"

	"loan-enforcement-agent/pkg/apperror"
)

// mapReadError classifies a failed eth_call. Every read failure is transient
// from the caller's point of view: the monitor retains its previous state and
// retries on the next cycle.
func mapReadError(err error) error {
	if err == nil {
		return nil
	}
	return apperror.ErrRPCUnavailable(err)
}

// mapWriteError classifies a failed submission (gas estimation or broadcast).
// Revert reasons surface through the node's error string, so classification is
// textual; anything unrecognised that still looks like a revert becomes
// TX_005 with the reason preserved.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "user rejected"), strings.Contains(msg, "user denied"):
		return apperror.ErrUserRejected()
	case strings.Contains(msg, "erc20insufficientbalance"),
		strings.Contains(msg, "transfer amount exceeds balance"),
		strings.Contains(msg, "insufficient funds"):
		return apperror.ErrInsufficientBalance()
	case strings.Contains(msg, "erc20insufficientallowance"),
		strings.Contains(msg, "insufficient allowance"):
		return apperror.ErrInsufficientAllowance()
	case strings.Contains(msg, "active loan"):
		return apperror.ErrAlreadyHasActiveLoan()
	case strings.Contains(msg, "execution reverted"):
		return apperror.ErrContractReverted(revertReason(err.Error()), err)
	default:
		return apperror.ErrRPCUnavailable(err)
	}
}

// revertReason extracts the human-readable reason from a node error string of
// the form "execution reverted: <reason>". Empty when the node supplied none.
func revertReason(msg string) string {
	const marker = "execution reverted"
	idx := strings.Index(strings.ToLower(msg), marker)
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len(marker):]
	rest = strings.TrimLeft(rest, ": ")
	return strings.TrimSpace(rest)
}
