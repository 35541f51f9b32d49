package service

import (
	"context"
	"errors"
	"testing"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLockFixture(t *testing.T) (*mocks.MockPinningBridge, *LockControllerImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockPinningBridge(ctrl)
	return bridge, NewLockController(bridge, nil, testAddress, zerolog.Nop())
}

func TestLockController_LockedStatePins(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil)

	require.NoError(t, c.ApplyState(context.Background(), domain.LockStateOverdue))
}

func TestLockController_ReapplyingLockRepins(t *testing.T) {
	bridge, c := newLockFixture(t)

	// Same decision twice still drives the pinning sequence twice; the user
	// may have escaped the pinned screen between polls.
	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil).Times(2)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	require.NoError(t, c.ApplyState(ctx, domain.LockStateOverdue))
	require.NoError(t, c.ApplyState(ctx, domain.LockStateOverdue))
}

func TestLockController_UnlockedStateReleases(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil)
	// The exit gesture must be restored before pinning stops.
	enable := bridge.EXPECT().EnableExitGesture(gomock.Any()).Return(nil)
	bridge.EXPECT().StopPinning(gomock.Any()).Return(nil).After(enable)

	ctx := context.Background()
	require.NoError(t, c.ApplyState(ctx, domain.LockStateDefaulted))
	require.NoError(t, c.ApplyState(ctx, domain.LockStateNoLoan))
}

func TestLockController_UnknownStateDoesNothing(t *testing.T) {
	_, c := newLockFixture(t)

	// No bridge expectations: UNKNOWN must neither pin nor unpin.
	assert.NoError(t, c.ApplyState(context.Background(), domain.LockStateUnknown))
}

func TestLockController_UnknownNeverReleasesExistingLock(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil)

	ctx := context.Background()
	require.NoError(t, c.ApplyState(ctx, domain.LockStateOverdue))
	require.NoError(t, c.ApplyState(ctx, domain.LockStateUnknown))
}

func TestLockController_OnForegroundReassertsLock(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StartPinning(gomock.Any()).Return(nil).Times(2)
	bridge.EXPECT().DisableExitGesture(gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	require.NoError(t, c.ApplyState(ctx, domain.LockStateOverdue))
	require.NoError(t, c.OnForeground(ctx))
}

func TestLockController_OnForegroundNoopWhenUnlocked(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StopPinning(gomock.Any()).Return(nil)
	bridge.EXPECT().EnableExitGesture(gomock.Any()).Return(nil)

	ctx := context.Background()
	require.NoError(t, c.ApplyState(ctx, domain.LockStateNoLoan))
	require.NoError(t, c.OnForeground(ctx))
}

func TestLockController_BridgeFailurePropagates(t *testing.T) {
	bridge, c := newLockFixture(t)

	bridge.EXPECT().StartPinning(gomock.Any()).Return(errors.New("pin helper crashed"))

	err := c.ApplyState(context.Background(), domain.LockStateOverdue)
	assert.Error(t, err)
}
