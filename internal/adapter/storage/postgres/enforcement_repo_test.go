package postgres

import (
	"context"
	"errors"
	"testing"

	"loan-enforcement-agent/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcementRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnforcementRepo(mock)

	event := domain.NewEnforcementEvent("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", domain.ActionLockApplied)
	event.LockState = domain.LockStateOverdue
	event.Details = `{"reason":"loan overdue"}`

	mock.ExpectExec("INSERT INTO enforcement_events").
		WithArgs(event.ID, event.WalletAddress, string(event.Action), string(event.LockState),
			event.TxHash, event.Details, event.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnforcementRepo_CreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEnforcementRepo(mock)
	event := domain.NewEnforcementEvent("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", domain.ActionPollFailed)

	mock.ExpectExec("INSERT INTO enforcement_events").
		WithArgs(event.ID, event.WalletAddress, string(event.Action), string(event.LockState),
			event.TxHash, event.Details, event.CreatedAt).
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), event)
	assert.Error(t, err)
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "postgresql", hc.Name())
}
