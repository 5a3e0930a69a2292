package models

// User represents the USERS table
type User struct {
	ID           string  `db:"ID" json:"id"`
	Email        string  `db:"EMAIL" json:"email"`
	PasswordHash string  `db:"PASSWORD_HASH" json:"-"`
	Role         string  `db:"ROLE" json:"role"`
	FirstName    string  `db:"FIRST_NAME" json:"firstName"`
	LastName     string  `db:"LAST_NAME" json:"lastName"`
	Phone        *string `db:"PHONE" json:"phone,omitempty"`
	Location     *string `db:"LOCATION" json:"location,omitempty"`
	Bio          *string `db:"BIO" json:"bio,omitempty"`
	Company      *string `db:"COMPANY" json:"company,omitempty"`
	Website      *string `db:"WEBSITE" json:"website,omitempty"`
	CreatedTime  int64   `db:"CREATED_TIME" json:"createdTime"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login with a signed credential
type AuthResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	Token     string `json:"token"`
}

// UpdateProfileRequest is the payload for PUT /users/profile
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
	Company   *string `json:"company"`
	Website   *string `json:"website"`
}

// ChangePasswordRequest is the payload for PUT /users/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// OwnerSummary is the directory projection of an owner exposed to consumers
type OwnerSummary struct {
	ID        string  `db:"ID" json:"id"`
	FirstName string  `db:"FIRST_NAME" json:"firstName"`
	LastName  string  `db:"LAST_NAME" json:"lastName"`
	Email     string  `db:"EMAIL" json:"email"`
	Company   *string `db:"COMPANY" json:"company,omitempty"`
}
