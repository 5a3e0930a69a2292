package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Record represents the DATA_RECORDS table. The payload is opaque to the
// service; it is stored and released verbatim, never interpreted.
type Record struct {
	ID         string `db:"ID" json:"id"`
	OfferingID string `db:"OFFERING_ID" json:"offeringId"`
	OwnerID    string `db:"OWNER_ID" json:"ownerId"`
	Payload    JSON   `db:"DATA_PAYLOAD" json:"payload"`
}

// UpsertRecordRequest is the payload for PUT /offerings/:id/record
type UpsertRecordRequest struct {
	Payload JSON `json:"payload" binding:"required"`
}

// JSON type for handling JSON fields in MySQL
type JSON json.RawMessage

// Scan implements the sql.Scanner interface for JSON
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSON: %T", value)
	}

	if !json.Valid(bytes) {
		return fmt.Errorf("invalid JSON data")
	}

	// The driver may reuse the source buffer after Scan returns; copy so the
	// stored payload stays valid.
	*j = append(JSON(nil), bytes...)
	return nil
}

// Value implements the driver.Valuer interface for JSON
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

// MarshalJSON implements json.Marshaler
func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return nil
	}
	*j = JSON(data)
	return nil
}
