package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
)

// OfferingDAO handles database operations for data offerings
type OfferingDAO struct {
	db *database.DB
}

// NewOfferingDAO creates a new OfferingDAO instance
func NewOfferingDAO(db *database.DB) *OfferingDAO {
	return &OfferingDAO{db: db}
}

// CreateWithTx inserts a new offering using a transaction. Creation always
// runs inside one, alongside the optional record seed.
func (dao *OfferingDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, offering *models.Offering) error {
	query := `
		INSERT INTO DATA_OFFERINGS (
			ID, OWNER_ID, NAME, DESCRIPTION, SENSITIVITY, CATEGORY, CREATED_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(
		ctx,
		query,
		offering.ID,
		offering.OwnerID,
		offering.Name,
		offering.Description,
		offering.Sensitivity,
		offering.Category,
		offering.CreatedTime,
	)

	if err != nil {
		return fmt.Errorf("failed to create offering with transaction: %w", err)
	}

	return nil
}

// GetByID retrieves an offering by ID scoped to its owner
func (dao *OfferingDAO) GetByID(ctx context.Context, offeringID, ownerID string) (*models.Offering, error) {
	query := `
		SELECT ID, OWNER_ID, NAME, DESCRIPTION, SENSITIVITY, CATEGORY, CREATED_TIME
		FROM DATA_OFFERINGS
		WHERE ID = ? AND OWNER_ID = ?
	`

	var offering models.Offering
	err := dao.db.GetContext(ctx, &offering, query, offeringID, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("offering %s: %w", offeringID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get offering: %w", err)
	}

	return &offering, nil
}

// Exists checks whether an offering exists under the given owner
func (dao *OfferingDAO) Exists(ctx context.Context, offeringID, ownerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM DATA_OFFERINGS WHERE ID = ? AND OWNER_ID = ?)`

	var exists bool
	err := dao.db.GetContext(ctx, &exists, query, offeringID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to check offering existence: %w", err)
	}

	return exists, nil
}

// ListByOwner retrieves all offerings owned by a user
func (dao *OfferingDAO) ListByOwner(ctx context.Context, ownerID string) ([]models.Offering, error) {
	query := `
		SELECT ID, OWNER_ID, NAME, DESCRIPTION, SENSITIVITY, CATEGORY, CREATED_TIME
		FROM DATA_OFFERINGS
		WHERE OWNER_ID = ?
		ORDER BY CREATED_TIME DESC
	`

	var offerings []models.Offering
	err := dao.db.SelectContext(ctx, &offerings, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}

	return offerings, nil
}

// ListProjectionsByOwner retrieves the consumer-facing projection of an
// owner's offerings. Any authenticated consumer may call this for any owner;
// discovery precedes consent.
func (dao *OfferingDAO) ListProjectionsByOwner(ctx context.Context, ownerID string) ([]models.OfferingProjection, error) {
	query := `
		SELECT ID, NAME, DESCRIPTION, SENSITIVITY, CATEGORY
		FROM DATA_OFFERINGS
		WHERE OWNER_ID = ?
	`

	var offerings []models.OfferingProjection
	err := dao.db.SelectContext(ctx, &offerings, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offering projections: %w", err)
	}

	return offerings, nil
}

// Update updates an offering's metadata
func (dao *OfferingDAO) Update(ctx context.Context, offering *models.Offering) error {
	query := `
		UPDATE DATA_OFFERINGS
		SET NAME = ?, DESCRIPTION = ?, SENSITIVITY = ?, CATEGORY = ?
		WHERE ID = ? AND OWNER_ID = ?
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		offering.Name,
		offering.Description,
		offering.Sensitivity,
		offering.Category,
		offering.ID,
		offering.OwnerID,
	)

	if err != nil {
		return fmt.Errorf("failed to update offering: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("offering %s: %w", offering.ID, ErrNotFound)
	}

	return nil
}

// DeleteWithTx deletes an offering using a transaction. Callers are expected
// to have removed dependent consent requests and records first.
func (dao *OfferingDAO) DeleteWithTx(ctx context.Context, tx *database.Transaction, offeringID, ownerID string) error {
	query := `DELETE FROM DATA_OFFERINGS WHERE ID = ? AND OWNER_ID = ?`

	result, err := tx.ExecContext(ctx, query, offeringID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete offering: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("offering %s: %w", offeringID, ErrNotFound)
	}

	return nil
}

// CountByOwner returns the number of offerings owned by a user
func (dao *OfferingDAO) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM DATA_OFFERINGS WHERE OWNER_ID = ?`

	var count int
	err := dao.db.GetContext(ctx, &count, query, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count offerings: %w", err)
	}

	return count, nil
}
