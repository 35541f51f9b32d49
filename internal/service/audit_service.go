package service

import (
	"context"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.EnforcementRepository
	log  zerolog.Logger
}

// NewAuditService creates the enforcement event journal.
// If repo is nil, events are only written to the logger.
func NewAuditService(repo ports.EnforcementRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record journals an enforcement event asynchronously (fire-and-forget).
func (s *auditService) Record(ctx context.Context, event *domain.EnforcementEvent) {
	go func() {
		s.log.Info().
			Str("action", string(event.Action)).
			Str("wallet", event.WalletAddress).
			Str("lock_state", string(event.LockState)).
			Str("tx_hash", event.TxHash).
			Msg("enforcement event")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), event); err != nil {
				s.log.Warn().Err(err).Str("action", string(event.Action)).Msg("failed to persist enforcement event")
			}
		}
	}()
}
