package redis

import (
	"context"
	"math/big"
	"testing"
	"time"

	"loan-enforcement-agent/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateCache(t *testing.T) *StateCache {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewStateCache(client)
}

func TestStateCache_LoadEmpty(t *testing.T) {
	cache := newTestStateCache(t)

	update, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, update)
}

func TestStateCache_SaveAndLoad(t *testing.T) {
	cache := newTestStateCache(t)
	ctx := context.Background()

	saved := domain.LockUpdate{
		State: domain.LockStateOverdue,
		Loan: &domain.Loan{
			Principal:      big.NewInt(50_000_000),
			MaxPaymentDate: 1_700_000_000,
			Status:         domain.LoanStatusOverdue,
			CreatedAt:      1_690_000_000,
			IsOverdue:      true,
		},
		CheckedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, cache.Save(ctx, saved))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, domain.LockStateOverdue, loaded.State)
	require.NotNil(t, loaded.Loan)
	assert.Equal(t, 0, loaded.Loan.Principal.Cmp(saved.Loan.Principal))
	assert.True(t, loaded.Loan.IsOverdue)
	assert.True(t, loaded.CheckedAt.Equal(saved.CheckedAt))
}

func TestStateCache_OverwriteKeepsLatest(t *testing.T) {
	cache := newTestStateCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domain.LockUpdate{State: domain.LockStateOverdue}))
	require.NoError(t, cache.Save(ctx, domain.LockUpdate{State: domain.LockStateNoLoan}))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, domain.LockStateNoLoan, loaded.State)
}

func TestStateCache_SurvivesStaleFlag(t *testing.T) {
	cache := newTestStateCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domain.LockUpdate{
		State:     domain.LockStateDefaulted,
		Stale:     true,
		LastError: "rpc timeout",
	}))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Stale)
	assert.Equal(t, "rpc timeout", loaded.LastError)
	assert.True(t, loaded.State.Locked())
}
