package ports

import (
	"context"
	"time"

	"loan-enforcement-agent/internal/core/domain"
)

// EnforcementRepository persists the enforcement event journal.
type EnforcementRepository interface {
	Create(ctx context.Context, event *domain.EnforcementEvent) error
}

// StateCache persists the last published lock state so a restarted agent
// resumes from the previous decision instead of an unlocked default.
type StateCache interface {
	Save(ctx context.Context, update domain.LockUpdate) error
	// Load returns nil, nil when no state has been cached yet.
	Load(ctx context.Context) (*domain.LockUpdate, error)
}

// IdempotencyCache deduplicates write submissions from AppShell retries so a
// retried request never broadcasts a second blockchain transaction.
type IdempotencyCache interface {
	// Get returns the cached response for key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
