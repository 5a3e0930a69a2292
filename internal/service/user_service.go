package service

import (
	"context"
	"errors"
	"strings"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/config"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles profile and owner-directory operations
type UserService struct {
	userDAO *dao.UserDAO
	cfg     *config.Config
	logger  *logrus.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userDAO *dao.UserDAO, cfg *config.Config, logger *logrus.Logger) *UserService {
	return &UserService{
		userDAO: userDAO,
		cfg:     cfg,
		logger:  logger,
	}
}

// GetProfile retrieves the authenticated user's profile
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userDAO.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("user not found", err)
		}
		s.logger.WithError(err).Error("Failed to get user profile")
		return nil, apperror.Persistence("failed to retrieve profile", err)
	}
	return user, nil
}

// UpdateProfile updates the authenticated user's profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID string, request *models.UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateRequired("firstName", request.FirstName); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if err := utils.ValidateRequired("lastName", request.LastName); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}

	user := &models.User{
		ID:        userID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Location:  request.Location,
		Bio:       request.Bio,
		Company:   request.Company,
		Website:   request.Website,
	}

	if err := s.userDAO.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.NotFound("user not found", err)
		}
		s.logger.WithError(err).Error("Failed to update user profile")
		return nil, apperror.Persistence("failed to update profile", err)
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword verifies the current password and replaces it
func (s *UserService) ChangePassword(ctx context.Context, userID string, request *models.ChangePasswordRequest) error {
	user, err := s.userDAO.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return apperror.NotFound("user not found", err)
		}
		return apperror.Persistence("failed to change password", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.CurrentPassword)); err != nil {
		return apperror.InvalidCredential("current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), s.cfg.Auth.BcryptCost)
	if err != nil {
		return apperror.Persistence("failed to hash password", err)
	}

	if err := s.userDAO.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		s.logger.WithError(err).Error("Failed to update password hash")
		return apperror.Persistence("failed to change password", err)
	}

	s.logger.WithField("user_id", userID).Info("Password changed")
	return nil
}

// ListOwners retrieves the owner directory, optionally filtered by an email
// search term.
func (s *UserService) ListOwners(ctx context.Context, search string) ([]models.OwnerSummary, error) {
	search = strings.TrimSpace(search)

	var (
		owners []models.OwnerSummary
		err    error
	)
	if search == "" {
		owners, err = s.userDAO.ListOwners(ctx)
	} else {
		owners, err = s.userDAO.SearchOwners(ctx, utils.SanitizeString(search))
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to list owners")
		return nil, apperror.Persistence("failed to retrieve owners", err)
	}

	return owners, nil
}
