package chain

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"loan-enforcement-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known hardhat dev account, never used outside local testing.
const (
	testPrivKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testPrivKeyAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testRecord(chainID uint64) EnrollmentRecord {
	return EnrollmentRecord{
		Address:    testPrivKeyAddr,
		ChainID:    chainID,
		PrivateKey: testPrivKeyHex,
	}
}

func TestNewWallet_DerivesAddress(t *testing.T) {
	w, err := NewWallet(testRecord(421614), 421614, "", zerolog.Nop())
	require.NoError(t, err)

	id := w.Identity()
	assert.Equal(t, testPrivKeyAddr, id.Address)
	assert.Equal(t, uint64(421614), id.ChainID)
}

func TestNewWallet_AddressMismatch(t *testing.T) {
	rec := testRecord(421614)
	rec.Address = "0x0000000000000000000000000000000000000001"

	_, err := NewWallet(rec, 421614, "", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestNewWallet_BadKey(t *testing.T) {
	rec := testRecord(421614)
	rec.PrivateKey = "not-a-key"

	_, err := NewWallet(rec, 421614, "", zerolog.Nop())
	require.Error(t, err)
}

func TestLoadWallet_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.json")
	raw, err := json.Marshal(testRecord(421614))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	w, err := LoadWallet(path, 421614, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, testPrivKeyAddr, w.Identity().Address)
}

func TestEnsureNetwork_MatchingChain(t *testing.T) {
	w, err := NewWallet(testRecord(421614), 421614, "", zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, w.EnsureNetwork(context.Background()))
	assert.NoError(t, w.SwitchNetwork(context.Background()))
}

func TestEnsureNetwork_MismatchLatchesAfterFailedSwitch(t *testing.T) {
	// No provider endpoint configured, so the single switch attempt fails
	// immediately and the mismatch latches.
	w, err := NewWallet(testRecord(1), 421614, "", zerolog.Nop())
	require.NoError(t, err)

	first := w.EnsureNetwork(context.Background())
	require.Error(t, first)
	assert.Equal(t, apperror.CodeNetworkMismatch, apperror.CodeOf(first))

	second := w.EnsureNetwork(context.Background())
	assert.Equal(t, first, second)

	viaSwitch := w.SwitchNetwork(context.Background())
	assert.Equal(t, first, viaSwitch)

	assert.Equal(t, uint64(1), w.Identity().ChainID)
}

func TestSignTx_SignsForTargetChain(t *testing.T) {
	w, err := NewWallet(testRecord(421614), 421614, "", zerolog.Nop())
	require.NoError(t, err)

	sub := NewSubmitter(&fakeBackend{}, w, testLoanContract, testToken, zerolog.Nop())
	hash, err := sub.SubmitApprove(context.Background(), bigOne())
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
