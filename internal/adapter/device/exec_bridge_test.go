package device

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecBridge_RunsConfiguredCommand(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "pinned")

	b := NewExecBridge("touch "+marker, "", "", "", zerolog.Nop())
	require.NoError(t, b.StartPinning(context.Background()))

	_, err := os.Stat(marker)
	assert.NoError(t, err)
}

func TestExecBridge_MissingCommandIsNoop(t *testing.T) {
	b := NewExecBridge("", "", "", "", zerolog.Nop())

	ctx := context.Background()
	assert.NoError(t, b.StartPinning(ctx))
	assert.NoError(t, b.StopPinning(ctx))
	assert.NoError(t, b.DisableExitGesture(ctx))
	assert.NoError(t, b.EnableExitGesture(ctx))
}

func TestExecBridge_CommandFailure(t *testing.T) {
	b := NewExecBridge("false", "", "", "", zerolog.Nop())
	assert.Error(t, b.StartPinning(context.Background()))
}

func TestExecBridge_Idempotent(t *testing.T) {
	b := NewExecBridge("true", "true", "", "", zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, b.StartPinning(ctx))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, b.StopPinning(ctx))
	}
}

func TestNoopBridge(t *testing.T) {
	b := NewNoopBridge()

	ctx := context.Background()
	assert.NoError(t, b.StartPinning(ctx))
	assert.NoError(t, b.StopPinning(ctx))
	assert.NoError(t, b.DisableExitGesture(ctx))
	assert.NoError(t, b.EnableExitGesture(ctx))
}
