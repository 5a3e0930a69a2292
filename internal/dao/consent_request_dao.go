package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
)

// ConsentRequestDAO handles database operations for consent requests
type ConsentRequestDAO struct {
	db *database.DB
}

// NewConsentRequestDAO creates a new ConsentRequestDAO instance
func NewConsentRequestDAO(db *database.DB) *ConsentRequestDAO {
	return &ConsentRequestDAO{db: db}
}

// Create inserts a new consent request
func (dao *ConsentRequestDAO) Create(ctx context.Context, request *models.ConsentRequest) error {
	query := `
		INSERT INTO CONSENT_REQUESTS (ID, CONSUMER_ID, OWNER_ID, OFFERING_ID, PURPOSE, STATUS, CREATED_TIME, UPDATED_TIME)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := dao.db.ExecContext(
		ctx,
		query,
		request.ID,
		request.ConsumerID,
		request.OwnerID,
		request.OfferingID,
		request.Purpose,
		request.Status,
		request.CreatedTime,
		request.UpdatedTime,
	)

	if err != nil {
		return fmt.Errorf("failed to create consent request: %w", err)
	}

	return nil
}

// GetByID retrieves a consent request by its ID
func (dao *ConsentRequestDAO) GetByID(ctx context.Context, requestID string) (*models.ConsentRequest, error) {
	query := `
		SELECT ID, CONSUMER_ID, OWNER_ID, OFFERING_ID, PURPOSE, STATUS, CREATED_TIME, UPDATED_TIME
		FROM CONSENT_REQUESTS
		WHERE ID = ?
	`

	var request models.ConsentRequest
	err := dao.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("consent request %s: %w", requestID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consent request: %w", err)
	}

	return &request, nil
}

// GetByIDForOwner retrieves a consent request scoped to the owning user
func (dao *ConsentRequestDAO) GetByIDForOwner(ctx context.Context, requestID, ownerID string) (*models.ConsentRequest, error) {
	query := `
		SELECT ID, CONSUMER_ID, OWNER_ID, OFFERING_ID, PURPOSE, STATUS, CREATED_TIME, UPDATED_TIME
		FROM CONSENT_REQUESTS
		WHERE ID = ? AND OWNER_ID = ?
	`

	var request models.ConsentRequest
	err := dao.db.GetContext(ctx, &request, query, requestID, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("consent request %s for owner %s: %w", requestID, ownerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consent request for owner: %w", err)
	}

	return &request, nil
}

// UpdateStatusFrom performs a conditional status transition. The WHERE clause
// pins the expected current status so concurrent transitions cannot both win;
// a zero row count means another writer got there first (or the row is gone)
// and surfaces as ErrNoTransition.
func (dao *ConsentRequestDAO) UpdateStatusFrom(ctx context.Context, requestID string, from, to models.RequestStatus, updatedTime int64) error {
	query := `
		UPDATE CONSENT_REQUESTS
		SET STATUS = ?, UPDATED_TIME = ?
		WHERE ID = ? AND STATUS = ?
	`

	result, err := dao.db.ExecContext(ctx, query, to, updatedTime, requestID, from)
	if err != nil {
		return fmt.Errorf("failed to update consent request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("consent request %s from %s to %s: %w", requestID, from, to, ErrNoTransition)
	}

	return nil
}

// ListPendingByOwner retrieves all pending requests addressed to an owner,
// joined with the consumer identity and the offering name for display.
func (dao *ConsentRequestDAO) ListPendingByOwner(ctx context.Context, ownerID string) ([]models.PendingRequestItem, error) {
	query := `
		SELECT CR.ID, CR.CONSUMER_ID, U.FIRST_NAME, U.LAST_NAME, U.COMPANY,
		       CR.OFFERING_ID, O.NAME AS OFFERING_NAME,
		       CR.PURPOSE, CR.CREATED_TIME
		FROM CONSENT_REQUESTS CR
		JOIN USERS U ON U.ID = CR.CONSUMER_ID
		LEFT JOIN DATA_OFFERINGS O ON O.ID = CR.OFFERING_ID
		WHERE CR.OWNER_ID = ? AND CR.STATUS = ?
		ORDER BY CR.CREATED_TIME DESC
	`

	items := []models.PendingRequestItem{}
	err := dao.db.SelectContext(ctx, &items, query, ownerID, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return items, nil
}

// ListConnectionsByOwner retrieves approved requests for an owner, each one an
// active consumer connection.
func (dao *ConsentRequestDAO) ListConnectionsByOwner(ctx context.Context, ownerID string) ([]models.ConnectionItem, error) {
	query := `
		SELECT CR.ID, CR.CONSUMER_ID, U.FIRST_NAME, U.LAST_NAME, U.COMPANY,
		       CR.PURPOSE, CR.UPDATED_TIME AS SINCE
		FROM CONSENT_REQUESTS CR
		JOIN USERS U ON U.ID = CR.CONSUMER_ID
		WHERE CR.OWNER_ID = ? AND CR.STATUS = ?
		ORDER BY CR.UPDATED_TIME DESC
	`

	items := []models.ConnectionItem{}
	err := dao.db.SelectContext(ctx, &items, query, ownerID, models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return items, nil
}

// ListByConsumer retrieves all requests a consumer has made, regardless of status
func (dao *ConsentRequestDAO) ListByConsumer(ctx context.Context, consumerID string) ([]models.AccessGrantItem, error) {
	query := `
		SELECT CR.ID, CR.STATUS, CR.OWNER_ID, U.FIRST_NAME, U.EMAIL, U.COMPANY,
		       CR.OFFERING_ID, O.SENSITIVITY, O.CATEGORY, CR.CREATED_TIME
		FROM CONSENT_REQUESTS CR
		JOIN USERS U ON U.ID = CR.OWNER_ID
		LEFT JOIN DATA_OFFERINGS O ON O.ID = CR.OFFERING_ID
		WHERE CR.CONSUMER_ID = ?
		ORDER BY CR.CREATED_TIME DESC
	`

	items := []models.AccessGrantItem{}
	err := dao.db.SelectContext(ctx, &items, query, consumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by consumer: %w", err)
	}

	return items, nil
}

// GetStatusForTuple retrieves the current status of the request binding a
// consumer to an owner's offering. Used as the gate for record access.
func (dao *ConsentRequestDAO) GetStatusForTuple(ctx context.Context, consumerID, ownerID, offeringID string) (models.RequestStatus, error) {
	query := `
		SELECT STATUS
		FROM CONSENT_REQUESTS
		WHERE CONSUMER_ID = ? AND OWNER_ID = ? AND OFFERING_ID = ?
		ORDER BY UPDATED_TIME DESC
		LIMIT 1
	`

	var status models.RequestStatus
	err := dao.db.GetContext(ctx, &status, query, consumerID, ownerID, offeringID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("consent for consumer %s on offering %s: %w", consumerID, offeringID, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get consent status: %w", err)
	}

	return status, nil
}

// ExistsOpenForTuple reports whether a pending or approved request already
// binds the consumer to the owner's offering.
func (dao *ConsentRequestDAO) ExistsOpenForTuple(ctx context.Context, consumerID, ownerID, offeringID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM CONSENT_REQUESTS
			WHERE CONSUMER_ID = ? AND OWNER_ID = ? AND OFFERING_ID = ?
			  AND STATUS IN (?, ?)
		)
	`

	var exists bool
	err := dao.db.GetContext(ctx, &exists, query, consumerID, ownerID, offeringID, models.StatusPending, models.StatusApproved)
	if err != nil {
		return false, fmt.Errorf("failed to check open requests: %w", err)
	}

	return exists, nil
}

// CountByOwnerAndStatus counts requests addressed to an owner in a given status
func (dao *ConsentRequestDAO) CountByOwnerAndStatus(ctx context.Context, ownerID string, status models.RequestStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM CONSENT_REQUESTS WHERE OWNER_ID = ? AND STATUS = ?`

	var count int64
	err := dao.db.GetContext(ctx, &count, query, ownerID, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests by owner: %w", err)
	}

	return count, nil
}

// CountByConsumerAndStatus counts requests a consumer has made in a given status
func (dao *ConsentRequestDAO) CountByConsumerAndStatus(ctx context.Context, consumerID string, status models.RequestStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM CONSENT_REQUESTS WHERE CONSUMER_ID = ? AND STATUS = ?`

	var count int64
	err := dao.db.GetContext(ctx, &count, query, consumerID, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests by consumer: %w", err)
	}

	return count, nil
}

// DeleteByOfferingWithTx deletes all consent requests referencing an offering
// using a transaction
func (dao *ConsentRequestDAO) DeleteByOfferingWithTx(ctx context.Context, tx *database.Transaction, offeringID, ownerID string) error {
	query := `DELETE FROM CONSENT_REQUESTS WHERE OFFERING_ID = ? AND OWNER_ID = ?`

	_, err := tx.ExecContext(ctx, query, offeringID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete consent requests by offering: %w", err)
	}

	return nil
}
