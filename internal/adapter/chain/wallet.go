package chain

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
)

// EnrollmentRecord is the on-disk form of the embedded wallet, written once
// during device enrollment. The chain id recorded here is the chain the
// wallet was created against.
type EnrollmentRecord struct {
	Address    string `json:"address"`
	ChainID    uint64 `json:"chain_id"`
	PrivateKey string `json:"private_key"`
}

// EmbeddedWallet holds the enrollment key and enforces the chain binding.
// A wallet created on the wrong chain gets exactly one switch attempt; after
// a failed attempt every call reports the same latched mismatch.
type EmbeddedWallet struct {
	key           *ecdsa.PrivateKey
	address       common.Address
	targetChainID uint64
	providerURL   string
	log           zerolog.Logger

	mu             sync.Mutex
	currentChainID uint64
	switchTried    bool
	switchErr      error
}

// LoadWallet reads the enrollment record from path and binds it to the
// configured target chain.
func LoadWallet(path string, targetChainID uint64, providerURL string, log zerolog.Logger) (*EmbeddedWallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wallet keyfile: %w", err)
	}

	var rec EnrollmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parsing wallet keyfile: %w", err)
	}
	return NewWallet(rec, targetChainID, providerURL, log)
}

// NewWallet builds a wallet from an enrollment record.
func NewWallet(rec EnrollmentRecord, targetChainID uint64, providerURL string, log zerolog.Logger) (*EmbeddedWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(rec.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding wallet private key: %w", err)
	}

	derived := crypto.PubkeyToAddress(key.PublicKey)
	if rec.Address != "" && !strings.EqualFold(rec.Address, derived.Hex()) {
		return nil, fmt.Errorf("wallet keyfile address %s does not match key", rec.Address)
	}

	return &EmbeddedWallet{
		key:            key,
		address:        derived,
		targetChainID:  targetChainID,
		providerURL:    providerURL,
		currentChainID: rec.ChainID,
		log:            log,
	}, nil
}

// Identity returns the wallet address and the chain it currently reports.
func (w *EmbeddedWallet) Identity() domain.WalletIdentity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.WalletIdentity{Address: w.address.Hex(), ChainID: w.currentChainID}
}

// Address returns the wallet's account address.
func (w *EmbeddedWallet) Address() common.Address {
	return w.address
}

// EnsureNetwork verifies the wallet is on the configured chain, making the
// single best-effort switch attempt if it is not. Once an attempt has failed,
// the latched mismatch error is returned without contacting the provider
// again.
func (w *EmbeddedWallet) EnsureNetwork(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentChainID == w.targetChainID {
		return nil
	}
	if w.switchTried {
		if w.switchErr != nil {
			return w.switchErr
		}
		return nil
	}
	return w.attemptSwitchLocked(ctx)
}

// SwitchNetwork runs the switch attempt on demand. It shares the latch with
// EnsureNetwork.
func (w *EmbeddedWallet) SwitchNetwork(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentChainID == w.targetChainID {
		return nil
	}
	if w.switchTried {
		return w.switchErr
	}
	return w.attemptSwitchLocked(ctx)
}

// attemptSwitchLocked performs the one switch attempt and latches the result.
// Callers hold w.mu.
func (w *EmbeddedWallet) attemptSwitchLocked(ctx context.Context) error {
	w.switchTried = true

	w.log.Warn().
		Uint64("wallet_chain_id", w.currentChainID).
		Uint64("target_chain_id", w.targetChainID).
		Msg("wallet chain mismatch, attempting network switch")

	err := w.requestSwitch(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("network switch attempt failed")
		w.switchErr = apperror.ErrNetworkMismatch(w.currentChainID, w.targetChainID)
		return w.switchErr
	}

	w.currentChainID = w.targetChainID
	w.log.Info().Uint64("chain_id", w.targetChainID).Msg("wallet switched to target network")
	return nil
}

// requestSwitch issues wallet_switchEthereumChain against the wallet provider.
func (w *EmbeddedWallet) requestSwitch(ctx context.Context) error {
	if strings.TrimSpace(w.providerURL) == "" {
		return fmt.Errorf("no wallet provider endpoint configured")
	}

	client, err := rpc.DialContext(ctx, w.providerURL)
	if err != nil {
		return fmt.Errorf("dialing wallet provider: %w", err)
	}
	defer client.Close()

	param := struct {
		ChainID string `json:"chainId"`
	}{ChainID: hexutil.EncodeUint64(w.targetChainID)}

	if err := client.CallContext(ctx, nil, "wallet_switchEthereumChain", param); err != nil {
		return fmt.Errorf("wallet_switchEthereumChain: %w", err)
	}
	return nil
}

// SignTx signs a transaction for the target chain.
func (w *EmbeddedWallet) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	signer := types.LatestSignerForChainID(new(big.Int).SetUint64(w.targetChainID))
	signed, err := types.SignTx(tx, signer, w.key)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	return signed, nil
}
