package service

import (
	"context"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/pkg/utils"

	"github.com/sirupsen/logrus"
)

// defaultAuditPageSize caps the trail returned to a single actor.
const defaultAuditPageSize = 200

// AuditService handles business logic for the audit trail
type AuditService struct {
	auditLogDAO *dao.AuditLogDAO
	logger      *logrus.Logger
}

// NewAuditService creates a new audit service instance
func NewAuditService(auditLogDAO *dao.AuditLogDAO, logger *logrus.Logger) *AuditService {
	return &AuditService{
		auditLogDAO: auditLogDAO,
		logger:      logger,
	}
}

// Record writes an audit entry for an actor's action. Audit failures are
// logged and swallowed: a broken trail must never fail the operation that
// produced it.
func (s *AuditService) Record(ctx context.Context, actorID string, action models.ActionType, targetID *string) {
	entry := &models.AuditLogEntry{
		ID:         utils.GenerateAuditID(),
		ActorID:    actorID,
		ActionType: action,
		TargetID:   targetID,
		Status:     models.AuditStatusSuccess,
		Timestamp:  utils.GetCurrentTimeMillis(),
	}

	if err := s.auditLogDAO.Create(ctx, entry); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"actor_id": actorID,
			"action":   action,
		}).Error("Failed to record audit entry")
	}
}

// ListForActor retrieves an actor's audit trail, newest first
func (s *AuditService) ListForActor(ctx context.Context, actorID string) ([]models.AuditLogEntry, error) {
	if err := utils.ValidateUserID(actorID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	entries, err := s.auditLogDAO.ListByActor(ctx, actorID, defaultAuditPageSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list audit entries")
		return nil, apperror.Persistence("failed to retrieve audit trail", err)
	}

	return entries, nil
}
