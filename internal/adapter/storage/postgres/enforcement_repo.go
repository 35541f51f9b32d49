package postgres

import (
	"context"

	"loan-enforcement-agent/internal/core/domain"
)

// EnforcementRepo persists the enforcement event journal. The journal is
// append-only; events are never updated or deleted by the agent.
type EnforcementRepo struct {
	pool Pool
}

// NewEnforcementRepo creates a PostgreSQL-backed EnforcementRepository.
func NewEnforcementRepo(pool Pool) *EnforcementRepo {
	return &EnforcementRepo{pool: pool}
}

// Create appends one enforcement event.
func (r *EnforcementRepo) Create(ctx context.Context, event *domain.EnforcementEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO enforcement_events (id, wallet_address, action, lock_state, tx_hash, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.WalletAddress, string(event.Action), string(event.LockState),
		event.TxHash, event.Details, event.CreatedAt,
	)
	return err
}
