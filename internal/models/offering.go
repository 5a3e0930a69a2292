package models

import "fmt"

// Sensitivity levels an offering may carry
const (
	SensitivityLow    = "LOW"
	SensitivityMedium = "MEDIUM"
	SensitivityHigh   = "HIGH"
)

// ValidateSensitivity checks that a sensitivity value is one of the known levels
func ValidateSensitivity(sensitivity string) error {
	switch sensitivity {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return nil
	default:
		return fmt.Errorf("invalid sensitivity: %s (must be LOW, MEDIUM, or HIGH)", sensitivity)
	}
}

// Offering represents the DATA_OFFERINGS table
type Offering struct {
	ID          string `db:"ID" json:"id"`
	OwnerID     string `db:"OWNER_ID" json:"ownerId"`
	Name        string `db:"NAME" json:"name"`
	Description string `db:"DESCRIPTION" json:"description"`
	Sensitivity string `db:"SENSITIVITY" json:"sensitivity"`
	Category    string `db:"CATEGORY" json:"category"`
	CreatedTime int64  `db:"CREATED_TIME" json:"createdTime"`
}

// OfferingProjection is the read-only view of an offering exposed to
// consumers for discovery. It never carries the owner's record payload.
type OfferingProjection struct {
	ID          string `db:"ID" json:"id"`
	Name        string `db:"NAME" json:"name"`
	Description string `db:"DESCRIPTION" json:"description"`
	Sensitivity string `db:"SENSITIVITY" json:"sensitivity"`
	Category    string `db:"CATEGORY" json:"category"`
}

// CreateOfferingRequest is the payload for POST /offerings
type CreateOfferingRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Sensitivity string `json:"sensitivity" binding:"required"`
	Category    string `json:"category"`
	// Payload optionally seeds the offering's data record in the same
	// transaction.
	Payload JSON `json:"payload,omitempty"`
}

// UpdateOfferingRequest is the payload for PUT /offerings/:id
type UpdateOfferingRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Sensitivity string `json:"sensitivity" binding:"required"`
	Category    string `json:"category"`
}
