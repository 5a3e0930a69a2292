package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
)

// UserDAO handles database operations for users
type UserDAO struct {
	db *database.DB
}

// NewUserDAO creates a new UserDAO instance
func NewUserDAO(db *database.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateWithTx inserts a new user using a transaction. Registration always
// runs inside one, alongside any owner provisioning.
func (dao *UserDAO) CreateWithTx(ctx context.Context, tx *database.Transaction, user *models.User) error {
	query := `
		INSERT INTO USERS (
			ID, EMAIL, PASSWORD_HASH, ROLE, FIRST_NAME, LAST_NAME, CREATED_TIME
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FirstName,
		user.LastName,
		user.CreatedTime,
	)

	if err != nil {
		return fmt.Errorf("failed to create user with transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (dao *UserDAO) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT ID, EMAIL, PASSWORD_HASH, ROLE, FIRST_NAME, LAST_NAME,
		       PHONE, LOCATION, BIO, COMPANY, WEBSITE, CREATED_TIME
		FROM USERS
		WHERE ID = ?
	`

	var user models.User
	err := dao.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (dao *UserDAO) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ID, EMAIL, PASSWORD_HASH, ROLE, FIRST_NAME, LAST_NAME,
		       PHONE, LOCATION, BIO, COMPANY, WEBSITE, CREATED_TIME
		FROM USERS
		WHERE EMAIL = ?
	`

	var user models.User
	err := dao.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// EmailExists checks if a user with the given email already exists
func (dao *UserDAO) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM USERS WHERE EMAIL = ?)`

	var exists bool
	err := dao.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// UpdateProfile updates a user's profile fields. The role and credential are
// never touched here.
func (dao *UserDAO) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE USERS
		SET FIRST_NAME = ?, LAST_NAME = ?, PHONE = ?, LOCATION = ?,
		    BIO = ?, COMPANY = ?, WEBSITE = ?
		WHERE ID = ?
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Location,
		user.Bio,
		user.Company,
		user.Website,
		user.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}

	return nil
}

// UpdatePasswordHash replaces a user's credential hash
func (dao *UserDAO) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE USERS SET PASSWORD_HASH = ? WHERE ID = ?`

	result, err := dao.db.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	return nil
}

// ListOwners retrieves the directory projection of all owners
func (dao *UserDAO) ListOwners(ctx context.Context) ([]models.OwnerSummary, error) {
	query := `
		SELECT ID, FIRST_NAME, LAST_NAME, EMAIL, COMPANY
		FROM USERS
		WHERE ROLE = 'owner'
	`

	var owners []models.OwnerSummary
	err := dao.db.SelectContext(ctx, &owners, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	return owners, nil
}

// SearchOwners retrieves owners whose email contains the given fragment
func (dao *UserDAO) SearchOwners(ctx context.Context, email string) ([]models.OwnerSummary, error) {
	query := `
		SELECT ID, FIRST_NAME, LAST_NAME, EMAIL, COMPANY
		FROM USERS
		WHERE EMAIL LIKE ? AND ROLE = 'owner'
	`

	var owners []models.OwnerSummary
	err := dao.db.SelectContext(ctx, &owners, query, "%"+email+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search owners: %w", err)
	}

	return owners, nil
}
