package models

// RequestStatus is the lifecycle state of a consent request
type RequestStatus string

const (
	// StatusPending is the initial state of every consent request
	StatusPending RequestStatus = "PENDING"
	// StatusApproved means the owner granted access
	StatusApproved RequestStatus = "APPROVED"
	// StatusRejected means the owner denied access; terminal
	StatusRejected RequestStatus = "REJECTED"
	// StatusRevoked means the owner withdrew a prior approval; terminal
	StatusRevoked RequestStatus = "REVOKED"
)

// IsValidStatus reports whether the given value is a known request status
func IsValidStatus(status string) bool {
	switch RequestStatus(status) {
	case StatusPending, StatusApproved, StatusRejected, StatusRevoked:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to the target. PENDING may move to APPROVED or REJECTED;
// APPROVED may move to REVOKED; REJECTED and REVOKED are terminal.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected
	case StatusApproved:
		return target == StatusRevoked
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are permitted
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusRevoked
}

// ConsentRequest represents the CONSENT_REQUESTS table
type ConsentRequest struct {
	ID          string  `db:"ID" json:"id"`
	ConsumerID  string  `db:"CONSUMER_ID" json:"consumerId"`
	OwnerID     string  `db:"OWNER_ID" json:"ownerId"`
	OfferingID  *string `db:"OFFERING_ID" json:"offeringId,omitempty"`
	Purpose     string  `db:"PURPOSE" json:"purpose"`
	Status      string  `db:"STATUS" json:"status"`
	CreatedTime int64   `db:"CREATED_TIME" json:"createdTime"`
	UpdatedTime int64   `db:"UPDATED_TIME" json:"updatedTime"`
}

// CreateRequestRequest is the payload for POST /consent-requests
type CreateRequestRequest struct {
	OwnerID    string `json:"ownerId" binding:"required"`
	OfferingID string `json:"offeringId" binding:"required"`
	Purpose    string `json:"purpose" binding:"required"`
}

// CreateRequestResponse is returned on successful request creation
type CreateRequestResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// RespondRequest is the payload for PUT /consent-requests/:id
type RespondRequest struct {
	Status string `json:"status" binding:"required"`
}

// PendingRequestItem is a pending request joined with consumer identity and
// the offering name, as shown on the owner's review queue
type PendingRequestItem struct {
	ID            string  `db:"ID" json:"id"`
	ConsumerID    string  `db:"CONSUMER_ID" json:"consumerId"`
	FirstName     string  `db:"FIRST_NAME" json:"firstName"`
	LastName      string  `db:"LAST_NAME" json:"lastName"`
	Company       *string `db:"COMPANY" json:"company,omitempty"`
	OfferingID    *string `db:"OFFERING_ID" json:"offeringId,omitempty"`
	OfferingName  *string `db:"OFFERING_NAME" json:"offeringName,omitempty"`
	Purpose       string  `db:"PURPOSE" json:"purpose"`
	CreatedTime   int64   `db:"CREATED_TIME" json:"createdTime"`
}

// ConnectionItem is an approved request joined with consumer identity, as
// shown on the owner's active-connections view
type ConnectionItem struct {
	ID          string  `db:"ID" json:"id"`
	ConsumerID  string  `db:"CONSUMER_ID" json:"consumerId"`
	FirstName   string  `db:"FIRST_NAME" json:"firstName"`
	LastName    string  `db:"LAST_NAME" json:"lastName"`
	Company     *string `db:"COMPANY" json:"company,omitempty"`
	Purpose     string  `db:"PURPOSE" json:"purpose"`
	Since       int64   `db:"SINCE" json:"since"`
}

// AccessGrantItem is a consumer's request joined with owner identity and the
// offering's sensitivity/category, as shown on the consumer's access list
type AccessGrantItem struct {
	ID          string  `db:"ID" json:"id"`
	Status      string  `db:"STATUS" json:"status"`
	OwnerID     string  `db:"OWNER_ID" json:"ownerId"`
	FirstName   string  `db:"FIRST_NAME" json:"firstName"`
	Email       string  `db:"EMAIL" json:"email"`
	Company     *string `db:"COMPANY" json:"company,omitempty"`
	OfferingID  *string `db:"OFFERING_ID" json:"offeringId,omitempty"`
	Sensitivity *string `db:"SENSITIVITY" json:"sensitivity,omitempty"`
	Category    *string `db:"CATEGORY" json:"category,omitempty"`
	CreatedTime int64   `db:"CREATED_TIME" json:"createdTime"`
}
