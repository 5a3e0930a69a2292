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

// ConsentService handles the consent request lifecycle: create, approve,
// reject, revoke, and the owner/consumer views over it.
type ConsentService struct {
	requestDAO   *dao.ConsentRequestDAO
	userDAO      *dao.UserDAO
	offeringDAO  *dao.OfferingDAO
	auditService *AuditService
	logger       *logrus.Logger
}

// NewConsentService creates a new consent service instance
func NewConsentService(
	requestDAO *dao.ConsentRequestDAO,
	userDAO *dao.UserDAO,
	offeringDAO *dao.OfferingDAO,
	auditService *AuditService,
	logger *logrus.Logger,
) *ConsentService {
	return &ConsentService{
		requestDAO:   requestDAO,
		userDAO:      userDAO,
		offeringDAO:  offeringDAO,
		auditService: auditService,
		logger:       logger,
	}
}

// CreateRequest files a new consent request from a consumer against an
// owner's offering. The request starts in PENDING.
func (s *ConsentService) CreateRequest(ctx context.Context, consumerID string, request *models.CreateRequestRequest) (*models.CreateRequestResponse, error) {
	if err := utils.ValidateUserID(request.OwnerID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := utils.ValidateOfferingID(request.OfferingID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := utils.ValidateRequired("purpose", request.Purpose); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if consumerID == request.OwnerID {
		return nil, apperror.Validation("cannot request access to your own data", nil)
	}

	owner, err := s.userDAO.GetByID(ctx, request.OwnerID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.Validation("owner could not be resolved", err)
		}
		s.logger.WithError(err).Error("Failed to look up owner")
		return nil, apperror.Persistence("failed to create request", err)
	}
	if owner.Role != string(models.RoleOwner) {
		return nil, apperror.Validation("target user is not a data owner", nil)
	}

	exists, err := s.offeringDAO.Exists(ctx, request.OfferingID, request.OwnerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check offering existence")
		return nil, apperror.Persistence("failed to create request", err)
	}
	if !exists {
		return nil, apperror.Validation("offering could not be resolved for this owner", nil)
	}

	open, err := s.requestDAO.ExistsOpenForTuple(ctx, consumerID, request.OwnerID, request.OfferingID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check for open requests")
		return nil, apperror.Persistence("failed to create request", err)
	}
	if open {
		return nil, apperror.Conflict("request already exists or failed", nil)
	}

	now := utils.GetCurrentTimeMillis()
	offeringID := request.OfferingID
	consentRequest := &models.ConsentRequest{
		ID:          utils.GenerateID(),
		ConsumerID:  consumerID,
		OwnerID:     request.OwnerID,
		OfferingID:  &offeringID,
		Purpose:     utils.SanitizeString(request.Purpose),
		Status:      string(models.StatusPending),
		CreatedTime: now,
		UpdatedTime: now,
	}

	if err := s.requestDAO.Create(ctx, consentRequest); err != nil {
		s.logger.WithError(err).Error("Failed to create consent request")
		return nil, apperror.Conflict("request already exists or failed", err)
	}

	s.auditService.Record(ctx, consumerID, models.ActionRequestAccess, &consentRequest.ID)

	s.logger.WithFields(logrus.Fields{
		"request_id":  consentRequest.ID,
		"consumer_id": consumerID,
		"owner_id":    request.OwnerID,
	}).Info("Consent request created")

	return &models.CreateRequestResponse{
		RequestID: consentRequest.ID,
		Status:    consentRequest.Status,
	}, nil
}

// ListPending retrieves the owner's review queue of pending requests
func (s *ConsentService) ListPending(ctx context.Context, ownerID string) ([]models.PendingRequestItem, error) {
	items, err := s.requestDAO.ListPendingByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list pending requests")
		return nil, apperror.Persistence("failed to retrieve pending requests", err)
	}
	return items, nil
}

// Respond moves a pending request to APPROVED or REJECTED on behalf of the
// owner it is addressed to. The transition is conditional on the request
// still being PENDING, so two concurrent decisions cannot both apply.
func (s *ConsentService) Respond(ctx context.Context, ownerID, requestID string, response *models.RespondRequest) (*models.ConsentRequest, error) {
	if err := utils.ValidateRequestID(requestID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	target := models.RequestStatus(response.Status)
	if target != models.StatusApproved && target != models.StatusRejected {
		return nil, apperror.Validation("status must be APPROVED or REJECTED", nil)
	}

	consentRequest, err := s.requestDAO.GetByIDForOwner(ctx, requestID, ownerID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("request not found", err)
		}
		s.logger.WithError(err).Error("Failed to get consent request")
		return nil, apperror.Persistence("failed to respond to request", err)
	}

	current := models.RequestStatus(consentRequest.Status)
	if !current.CanTransitionTo(target) {
		return nil, apperror.Conflict("request is not pending", nil)
	}

	now := utils.GetCurrentTimeMillis()
	err = s.requestDAO.UpdateStatusFrom(ctx, requestID, models.StatusPending, target, now)
	if err != nil {
		if errors.Is(err, dao.ErrNoTransition) {
			return nil, apperror.Conflict("request is not pending", err)
		}
		s.logger.WithError(err).Error("Failed to update request status")
		return nil, apperror.Persistence("failed to respond to request", err)
	}

	action := models.ActionApproveAccess
	if target == models.StatusRejected {
		action = models.ActionDenyAccess
	}
	s.auditService.Record(ctx, ownerID, action, &requestID)

	s.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"owner_id":   ownerID,
		"status":     target,
	}).Info("Consent request resolved")

	consentRequest.Status = string(target)
	consentRequest.UpdatedTime = now
	return consentRequest, nil
}

// Revoke withdraws a previously granted approval. Only the owner the request
// is addressed to may revoke it, and only from APPROVED.
func (s *ConsentService) Revoke(ctx context.Context, ownerID, requestID string) (*models.ConsentRequest, error) {
	if err := utils.ValidateRequestID(requestID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	consentRequest, err := s.requestDAO.GetByIDForOwner(ctx, requestID, ownerID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("request not found or no permission", err)
		}
		s.logger.WithError(err).Error("Failed to get consent request")
		return nil, apperror.Persistence("failed to revoke request", err)
	}

	if models.RequestStatus(consentRequest.Status) != models.StatusApproved {
		return nil, apperror.Conflict("only approved requests can be revoked", nil)
	}

	now := utils.GetCurrentTimeMillis()
	err = s.requestDAO.UpdateStatusFrom(ctx, requestID, models.StatusApproved, models.StatusRevoked, now)
	if err != nil {
		if errors.Is(err, dao.ErrNoTransition) {
			return nil, apperror.Conflict("only approved requests can be revoked", err)
		}
		s.logger.WithError(err).Error("Failed to revoke request")
		return nil, apperror.Persistence("failed to revoke request", err)
	}

	s.auditService.Record(ctx, ownerID, models.ActionRevokeAccess, &requestID)

	s.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"owner_id":   ownerID,
	}).Info("Consent request revoked")

	consentRequest.Status = string(models.StatusRevoked)
	consentRequest.UpdatedTime = now
	return consentRequest, nil
}

// ListConnections retrieves the owner's active (approved) consumer connections
func (s *ConsentService) ListConnections(ctx context.Context, ownerID string) ([]models.ConnectionItem, error) {
	items, err := s.requestDAO.ListConnectionsByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list connections")
		return nil, apperror.Persistence("failed to retrieve connections", err)
	}
	return items, nil
}

// ListAccessGrants retrieves all of a consumer's requests with their current
// statuses.
func (s *ConsentService) ListAccessGrants(ctx context.Context, consumerID string) ([]models.AccessGrantItem, error) {
	items, err := s.requestDAO.ListByConsumer(ctx, consumerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list access grants")
		return nil, apperror.Persistence("failed to retrieve requests", err)
	}
	return items, nil
}
