package service

import (
	"context"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/models"

	"github.com/sirupsen/logrus"
)

// DashboardService aggregates per-user counters for the dashboard views
type DashboardService struct {
	requestDAO  *dao.ConsentRequestDAO
	offeringDAO *dao.OfferingDAO
	auditLogDAO *dao.AuditLogDAO
	logger      *logrus.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	requestDAO *dao.ConsentRequestDAO,
	offeringDAO *dao.OfferingDAO,
	auditLogDAO *dao.AuditLogDAO,
	logger *logrus.Logger,
) *DashboardService {
	return &DashboardService{
		requestDAO:  requestDAO,
		offeringDAO: offeringDAO,
		auditLogDAO: auditLogDAO,
		logger:      logger,
	}
}

// ConsumerStats computes the consumer dashboard counters
func (s *DashboardService) ConsumerStats(ctx context.Context, consumerID string) (*models.ConsumerStats, error) {
	active, err := s.requestDAO.CountByConsumerAndStatus(ctx, consumerID, models.StatusApproved)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count approved requests")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	pending, err := s.requestDAO.CountByConsumerAndStatus(ctx, consumerID, models.StatusPending)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count pending requests")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	views, err := s.auditLogDAO.CountByActorAndAction(ctx, consumerID, models.ActionViewData)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count data views")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	return &models.ConsumerStats{
		ActiveConnections: active,
		PendingRequests:   pending,
		TotalViews:        views,
	}, nil
}

// OwnerStats computes the owner dashboard counters
func (s *DashboardService) OwnerStats(ctx context.Context, ownerID string) (*models.OwnerStats, error) {
	pending, err := s.requestDAO.CountByOwnerAndStatus(ctx, ownerID, models.StatusPending)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count pending requests")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	active, err := s.requestDAO.CountByOwnerAndStatus(ctx, ownerID, models.StatusApproved)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count approved requests")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	offerings, err := s.offeringDAO.CountByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count offerings")
		return nil, apperror.Persistence("failed to compute stats", err)
	}

	return &models.OwnerStats{
		PendingRequests:   pending,
		ActiveConnections: active,
		Offerings:         int64(offerings),
	}, nil
}
