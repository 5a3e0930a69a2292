package service

import (
	"context"
	"errors"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AccessService is the data gateway: it releases an owner's record payload to
// a consumer only while an APPROVED consent request binds them.
type AccessService struct {
	requestDAO   *dao.ConsentRequestDAO
	recordDAO    *dao.RecordDAO
	auditService *AuditService
	logger       *logrus.Logger
}

// NewAccessService creates a new access service instance
func NewAccessService(
	requestDAO *dao.ConsentRequestDAO,
	recordDAO *dao.RecordDAO,
	auditService *AuditService,
	logger *logrus.Logger,
) *AccessService {
	return &AccessService{
		requestDAO:   requestDAO,
		recordDAO:    recordDAO,
		auditService: auditService,
		logger:       logger,
	}
}

// ViewRecord returns the record payload for an owner's offering if and only
// if the consumer currently holds an approved consent. Revocation takes
// effect here immediately: the check reads the live status on every call.
func (s *AccessService) ViewRecord(ctx context.Context, consumerID, ownerID, offeringID string) (models.JSON, error) {
	if err := utils.ValidateUserID(ownerID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := utils.ValidateOfferingID(offeringID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	status, err := s.requestDAO.GetStatusForTuple(ctx, consumerID, ownerID, offeringID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.AccessDenied("access not granted", err)
		}
		s.logger.WithError(err).Error("Failed to check consent status")
		return nil, apperror.Persistence("failed to retrieve record", err)
	}
	if status != models.StatusApproved {
		return nil, apperror.AccessDenied("access not granted", nil)
	}

	payload, err := s.recordDAO.GetPayload(ctx, offeringID, ownerID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("record not found", err)
		}
		s.logger.WithError(err).Error("Failed to get record payload")
		return nil, apperror.Persistence("failed to retrieve record", err)
	}

	s.auditService.Record(ctx, consumerID, models.ActionViewData, &offeringID)

	return payload, nil
}
