package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the AppError code carried by err, or "" if err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given AppError code.
func HasCode(err error, code string) bool {
	return CodeOf(err) == code
}

// ---- Chain access (CHAIN) ----

const (
	CodeRPCUnavailable  = "CHAIN_001"
	CodeNetworkMismatch = "CHAIN_002"
)

// ErrRPCUnavailable marks a transient RPC failure. Callers apply fail-safe
// policy: retry on the next cycle, never treat it as an unlock.
func ErrRPCUnavailable(err error) *AppError {
	return Wrap(CodeRPCUnavailable, "Chain RPC unavailable", http.StatusServiceUnavailable, err)
}

// ErrNetworkMismatch marks a wallet bound to the wrong chain. Embedded wallets
// are chain-locked at creation, so a persistent mismatch is unrecoverable
// without recreating the wallet.
func ErrNetworkMismatch(current, expected uint64) *AppError {
	return New(
		CodeNetworkMismatch,
		fmt.Sprintf("Wallet is on chain %d but chain %d is required; the wallet must be recreated", current, expected),
		http.StatusConflict,
	)
}

// ---- Transaction submission (TX) ----

const (
	CodeUserRejected          = "TX_001"
	CodeInsufficientBalance   = "TX_002"
	CodeInsufficientAllowance = "TX_003"
	CodeAlreadyHasActiveLoan  = "TX_004"
	CodeContractReverted      = "TX_005"
)

func ErrUserRejected() *AppError {
	return New(CodeUserRejected, "Transaction was rejected by the user", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient token balance for this payment", http.StatusPaymentRequired)
}

func ErrInsufficientAllowance() *AppError {
	return New(CodeInsufficientAllowance, "Token approval failed or is insufficient", http.StatusUnprocessableEntity)
}

func ErrAlreadyHasActiveLoan() *AppError {
	return New(CodeAlreadyHasActiveLoan, "An active loan already exists for this wallet", http.StatusConflict)
}

// ErrContractReverted surfaces a revert that does not match a more specific
// taxonomy entry. The revert reason, when decodable, is kept in the message.
func ErrContractReverted(reason string, err error) *AppError {
	msg := "Contract call reverted"
	if reason != "" {
		msg = fmt.Sprintf("Contract call reverted: %s", reason)
	}
	return Wrap(CodeContractReverted, msg, http.StatusUnprocessableEntity, err)
}

// ---- Authentication (AUTH) ----

const CodeInvalidToken = "AUTH_001"

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

const CodeInternal = "SYS_001"

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// ---- Validation (VAL) ----

const CodeValidation = "VAL_001"

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
