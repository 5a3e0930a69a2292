package models

// ActionType identifies the audited action
type ActionType string

const (
	// ActionLogin is written on successful authentication
	ActionLogin ActionType = "LOGIN"
	// ActionRequestAccess is written when a consumer creates a consent request
	ActionRequestAccess ActionType = "REQUEST_ACCESS"
	// ActionApproveAccess is written when an owner approves a request
	ActionApproveAccess ActionType = "APPROVE_ACCESS"
	// ActionDenyAccess is written when an owner rejects a request
	ActionDenyAccess ActionType = "DENY_ACCESS"
	// ActionRevokeAccess is written when an owner revokes an approval
	ActionRevokeAccess ActionType = "REVOKE_ACCESS"
	// ActionViewData is written when a consumer reads a record through the gateway
	ActionViewData ActionType = "VIEW_DATA"
)

// AuditStatusSuccess is the default status recorded for an audited action
const AuditStatusSuccess = "SUCCESS"

// AuditLogEntry represents the AUDIT_LOGS table. Entries are append-only:
// they are never updated or deleted, and survive deletion of the entities
// they reference.
type AuditLogEntry struct {
	ID         string     `db:"ID" json:"id"`
	ActorID    string     `db:"ACTOR_ID" json:"actorId"`
	ActionType ActionType `db:"ACTION_TYPE" json:"actionType"`
	TargetID   *string    `db:"TARGET_ID" json:"targetId,omitempty"`
	Status     string     `db:"STATUS" json:"status"`
	Timestamp  int64      `db:"TIMESTAMP" json:"timestamp"`
}
