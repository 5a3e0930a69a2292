package service

import (
	"context"
	"errors"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/pkg/utils"

	"github.com/sirupsen/logrus"
)

// OfferingService handles offering management for owners and offering
// discovery for consumers.
type OfferingService struct {
	offeringDAO *dao.OfferingDAO
	recordDAO   *dao.RecordDAO
	requestDAO  *dao.ConsentRequestDAO
	db          *database.DB
	logger      *logrus.Logger
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(
	offeringDAO *dao.OfferingDAO,
	recordDAO *dao.RecordDAO,
	requestDAO *dao.ConsentRequestDAO,
	db *database.DB,
	logger *logrus.Logger,
) *OfferingService {
	return &OfferingService{
		offeringDAO: offeringDAO,
		recordDAO:   recordDAO,
		requestDAO:  requestDAO,
		db:          db,
		logger:      logger,
	}
}

// Create registers a new offering for an owner. If the request carries a
// payload the offering's record is seeded in the same transaction.
func (s *OfferingService) Create(ctx context.Context, ownerID string, request *models.CreateOfferingRequest) (*models.Offering, error) {
	if err := models.ValidateSensitivity(request.Sensitivity); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	offering := &models.Offering{
		ID:          utils.GenerateID(),
		OwnerID:     ownerID,
		Name:        utils.SanitizeString(request.Name),
		Description: utils.SanitizeString(request.Description),
		Sensitivity: request.Sensitivity,
		Category:    utils.SanitizeString(request.Category),
		CreatedTime: utils.GetCurrentTimeMillis(),
	}

	err := s.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		if err := s.offeringDAO.CreateWithTx(ctx, tx, offering); err != nil {
			return err
		}
		if len(request.Payload) > 0 {
			record := &models.Record{
				ID:         utils.GenerateID(),
				OfferingID: offering.ID,
				OwnerID:    ownerID,
				Payload:    request.Payload,
			}
			return s.recordDAO.CreateWithTx(ctx, tx, record)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to create offering")
		return nil, apperror.Persistence("failed to create offering", err)
	}

	s.logger.WithFields(logrus.Fields{
		"offering_id": offering.ID,
		"owner_id":    ownerID,
	}).Info("Offering created")

	return offering, nil
}

// Get retrieves one of the owner's offerings
func (s *OfferingService) Get(ctx context.Context, ownerID, offeringID string) (*models.Offering, error) {
	offering, err := s.offeringDAO.GetByID(ctx, offeringID, ownerID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("offering not found", err)
		}
		s.logger.WithError(err).Error("Failed to get offering")
		return nil, apperror.Persistence("failed to retrieve offering", err)
	}
	return offering, nil
}

// ListForOwner retrieves all offerings registered by an owner
func (s *OfferingService) ListForOwner(ctx context.Context, ownerID string) ([]models.Offering, error) {
	offerings, err := s.offeringDAO.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list offerings")
		return nil, apperror.Persistence("failed to retrieve offerings", err)
	}
	return offerings, nil
}

// ListCatalog retrieves an owner's offerings as the read-only projection
// exposed to consumers for discovery. Payloads never travel this path.
func (s *OfferingService) ListCatalog(ctx context.Context, ownerID string) ([]models.OfferingProjection, error) {
	if err := utils.ValidateUserID(ownerID); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	offerings, err := s.offeringDAO.ListProjectionsByOwner(ctx, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list offering catalog")
		return nil, apperror.Persistence("failed to retrieve offerings", err)
	}
	return offerings, nil
}

// Update modifies one of the owner's offerings
func (s *OfferingService) Update(ctx context.Context, ownerID, offeringID string, request *models.UpdateOfferingRequest) (*models.Offering, error) {
	if err := models.ValidateSensitivity(request.Sensitivity); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	offering := &models.Offering{
		ID:          offeringID,
		OwnerID:     ownerID,
		Name:        utils.SanitizeString(request.Name),
		Description: utils.SanitizeString(request.Description),
		Sensitivity: request.Sensitivity,
		Category:    utils.SanitizeString(request.Category),
	}

	if err := s.offeringDAO.Update(ctx, offering); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("offering not found", err)
		}
		s.logger.WithError(err).Error("Failed to update offering")
		return nil, apperror.Persistence("failed to update offering", err)
	}

	return s.Get(ctx, ownerID, offeringID)
}

// Delete removes one of the owner's offerings together with its record and
// every consent request referencing it, in one transaction. Audit entries
// referencing the offering are left in place.
func (s *OfferingService) Delete(ctx context.Context, ownerID, offeringID string) error {
	err := s.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		if err := s.requestDAO.DeleteByOfferingWithTx(ctx, tx, offeringID, ownerID); err != nil {
			return err
		}
		if err := s.recordDAO.DeleteByOfferingWithTx(ctx, tx, offeringID, ownerID); err != nil {
			return err
		}
		return s.offeringDAO.DeleteWithTx(ctx, tx, offeringID, ownerID)
	})
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return apperror.NotFound("offering not found", err)
		}
		s.logger.WithError(err).Error("Failed to delete offering")
		return apperror.Persistence("failed to delete offering", err)
	}

	s.logger.WithFields(logrus.Fields{
		"offering_id": offeringID,
		"owner_id":    ownerID,
	}).Info("Offering deleted")

	return nil
}

// UpsertRecord creates or replaces the record payload behind one of the
// owner's offerings.
func (s *OfferingService) UpsertRecord(ctx context.Context, ownerID, offeringID string, request *models.UpsertRecordRequest) error {
	exists, err := s.offeringDAO.Exists(ctx, offeringID, ownerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check offering existence")
		return apperror.Persistence("failed to store record", err)
	}
	if !exists {
		return apperror.NotFound("offering not found", nil)
	}

	record := &models.Record{
		ID:         utils.GenerateID(),
		OfferingID: offeringID,
		OwnerID:    ownerID,
		Payload:    request.Payload,
	}

	if err := s.recordDAO.Upsert(ctx, record); err != nil {
		s.logger.WithError(err).Error("Failed to upsert record")
		return apperror.Persistence("failed to store record", err)
	}

	return nil
}
