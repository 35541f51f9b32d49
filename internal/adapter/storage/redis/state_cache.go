package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"loan-enforcement-agent/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const lockStateKey = "loan:lock_state"

// StateCache persists the last published lock state. A restarted agent reads
// it back and resumes enforcement from the previous decision instead of an
// unlocked default, so a reboot never relaxes an active lock.
type StateCache struct {
	client *goredis.Client
}

// NewStateCache creates a Redis-backed lock state cache.
func NewStateCache(client *goredis.Client) *StateCache {
	return &StateCache{client: client}
}

// Save stores the lock update. Cached state never expires; it is overwritten
// on every successful recomputation.
func (c *StateCache) Save(ctx context.Context, update domain.LockUpdate) error {
	raw, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encoding lock state: %w", err)
	}
	if err := c.client.Set(ctx, lockStateKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis lock state save: %w", err)
	}
	return nil
}

// Load returns the cached lock update, or nil, nil when nothing has been
// cached yet.
func (c *StateCache) Load(ctx context.Context) (*domain.LockUpdate, error) {
	raw, err := c.client.Get(ctx, lockStateKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis lock state load: %w", err)
	}

	var update domain.LockUpdate
	if err := json.Unmarshal(raw, &update); err != nil {
		return nil, fmt.Errorf("decoding lock state: %w", err)
	}
	return &update, nil
}
