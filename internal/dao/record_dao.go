package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
)

// RecordDAO handles database operations for data records
type RecordDAO struct {
	db *database.DB
}

// NewRecordDAO creates a new RecordDAO instance
func NewRecordDAO(db *database.DB) *RecordDAO {
	return &RecordDAO{db: db}
}

// CreateWithTx inserts a new record using a transaction
func (dao *RecordDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, record *models.Record) error {
	query := `
		INSERT INTO DATA_RECORDS (ID, OFFERING_ID, OWNER_ID, DATA_PAYLOAD)
		VALUES (?, ?, ?, ?)
	`

	_, err := tx.ExecContext(
		ctx,
		query,
		record.ID,
		record.OfferingID,
		record.OwnerID,
		record.Payload,
	)

	if err != nil {
		return fmt.Errorf("failed to create record with transaction: %w", err)
	}

	return nil
}

// GetPayload retrieves the opaque payload for an offering/owner pair
func (dao *RecordDAO) GetPayload(ctx context.Context, offeringID, ownerID string) (models.JSON, error) {
	query := `
		SELECT DATA_PAYLOAD
		FROM DATA_RECORDS
		WHERE OFFERING_ID = ? AND OWNER_ID = ?
	`

	var payload models.JSON
	err := dao.db.GetContext(ctx, &payload, query, offeringID, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("record for offering %s: %w", offeringID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get record payload: %w", err)
	}

	return payload, nil
}

// Upsert creates or replaces the record payload for an offering. The
// OFFERING_ID column carries a unique constraint, keeping the offering/record
// relationship one-to-one.
func (dao *RecordDAO) Upsert(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO DATA_RECORDS (ID, OFFERING_ID, OWNER_ID, DATA_PAYLOAD)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE DATA_PAYLOAD = VALUES(DATA_PAYLOAD)
	`

	_, err := dao.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.OfferingID,
		record.OwnerID,
		record.Payload,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}

	return nil
}

// DeleteByOfferingWithTx deletes all records for an offering using a transaction
func (dao *RecordDAO) DeleteByOfferingWithTx(ctx context.Context, tx *database.Transaction, offeringID, ownerID string) error {
	query := `DELETE FROM DATA_RECORDS WHERE OFFERING_ID = ? AND OWNER_ID = ?`

	_, err := tx.ExecContext(ctx, query, offeringID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete records by offering: %w", err)
	}

	return nil
}
