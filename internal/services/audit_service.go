package services

import (
	"context"

	"github.com/sjperalta/rental-desk/internal/models"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

type AuditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Log records an audit entry. Failures are logged, not returned.
func (s *AuditService) Log(ctx context.Context, actor Actor, action, entity, entityID, details string) {
	entry := &models.AuditLog{
		UserID:    actor.UserID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: actor.IP,
		UserAgent: actor.UserAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to write audit log", "action", action, "entity", entity, "error", err)
	}
}

// List retrieves audit logs with filters
func (s *AuditService) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	return s.repo.List(ctx, query)
}
