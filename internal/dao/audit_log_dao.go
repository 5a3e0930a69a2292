package dao

import (
	"context"
	"fmt"

	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
)

// AuditLogDAO handles database operations for audit log entries
type AuditLogDAO struct {
	db *database.DB
}

// NewAuditLogDAO creates a new AuditLogDAO instance
func NewAuditLogDAO(db *database.DB) *AuditLogDAO {
	return &AuditLogDAO{db: db}
}

// Create inserts a new audit log entry. Audit rows carry no foreign keys so
// they outlive the offerings and requests they describe.
func (dao *AuditLogDAO) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO AUDIT_LOGS (ID, ACTOR_ID, ACTION_TYPE, TARGET_ID, STATUS, TIMESTAMP)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := dao.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.ActorID,
		entry.ActionType,
		entry.TargetID,
		entry.Status,
		entry.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// ListByActor retrieves all audit entries for an actor, newest first
func (dao *AuditLogDAO) ListByActor(ctx context.Context, actorID string, limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT ID, ACTOR_ID, ACTION_TYPE, TARGET_ID, STATUS, TIMESTAMP
		FROM AUDIT_LOGS
		WHERE ACTOR_ID = ?
		ORDER BY TIMESTAMP DESC
		LIMIT ?
	`

	entries := []models.AuditLogEntry{}
	err := dao.db.SelectContext(ctx, &entries, query, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}

	return entries, nil
}

// CountByActorAndAction counts an actor's audit entries for one action type
func (dao *AuditLogDAO) CountByActorAndAction(ctx context.Context, actorID string, action models.ActionType) (int64, error) {
	query := `SELECT COUNT(*) FROM AUDIT_LOGS WHERE ACTOR_ID = ? AND ACTION_TYPE = ?`

	var count int64
	err := dao.db.GetContext(ctx, &count, query, actorID, action)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}

	return count, nil
}
