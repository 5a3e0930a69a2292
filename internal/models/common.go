package models

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(code, message, details string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a new success response
func NewSuccessResponse(message string, data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// Role identifies which side of a data-sharing relationship a user is on
type Role string

const (
	// RoleOwner supplies data and controls access to it
	RoleOwner Role = "owner"
	// RoleConsumer requests and, once approved, reads data
	RoleConsumer Role = "consumer"
)

// IsValidRole reports whether the given role is one of the known roles
func IsValidRole(role string) bool {
	return role == string(RoleOwner) || role == string(RoleConsumer)
}
