package service

import (
	"context"
	"errors"
	"strings"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/config"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// defaultRecordPayload seeds the provisioned offering so a freshly registered
// owner has something consumers can request right away.
const defaultRecordPayload = `{"creditScore": 750, "healthRecord": "Fit"}`

// AuthService handles registration, login, and credential issuance
type AuthService struct {
	userDAO      *dao.UserDAO
	offeringDAO  *dao.OfferingDAO
	recordDAO    *dao.RecordDAO
	auditService *AuditService
	db           *database.DB
	cfg          *config.Config
	logger       *logrus.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userDAO *dao.UserDAO,
	offeringDAO *dao.OfferingDAO,
	recordDAO *dao.RecordDAO,
	auditService *AuditService,
	db *database.DB,
	cfg *config.Config,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		userDAO:      userDAO,
		offeringDAO:  offeringDAO,
		recordDAO:    recordDAO,
		auditService: auditService,
		db:           db,
		cfg:          cfg,
		logger:       logger,
	}
}

// Register creates a new user account. Owners additionally receive a
// provisioned default offering with a seeded record, all within one
// transaction so a half-registered owner never exists.
func (s *AuthService) Register(ctx context.Context, request *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))
	if err := utils.ValidateEmail(email); err != nil {
		return nil, apperror.Validation(err.Error(), err)
	}
	if !models.IsValidRole(request.Role) {
		return nil, apperror.Validation("role must be 'owner' or 'consumer'", nil)
	}

	exists, err := s.userDAO.EmailExists(ctx, email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check email existence")
		return nil, apperror.Persistence("failed to register user", err)
	}
	if exists {
		return nil, apperror.Conflict("an account with this email already exists", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, apperror.Persistence("failed to hash password", err)
	}

	user := &models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         request.Role,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		CreatedTime:  utils.GetCurrentTimeMillis(),
	}

	err = s.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		if err := s.userDAO.CreateWithTx(ctx, tx, user); err != nil {
			return err
		}
		if user.Role == string(models.RoleOwner) && s.cfg.Provisioning.Enabled {
			return s.provisionDefaultOffering(ctx, tx, user)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to register user")
		return nil, apperror.Persistence("failed to register user", err)
	}

	token, err := utils.IssueToken(s.cfg.Auth.TokenSecret, user.ID, user.Role, s.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, apperror.Persistence("failed to issue token", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return &models.AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		Token:     token,
	}, nil
}

// provisionDefaultOffering seeds a new owner with one offering and its record
func (s *AuthService) provisionDefaultOffering(ctx context.Context, tx *database.Transaction, owner *models.User) error {
	offering := &models.Offering{
		ID:          utils.GenerateID(),
		OwnerID:     owner.ID,
		Name:        s.cfg.Provisioning.OfferingName,
		Description: s.cfg.Provisioning.OfferingDescription,
		Sensitivity: s.cfg.Provisioning.OfferingSensitivity,
		Category:    s.cfg.Provisioning.OfferingCategory,
		CreatedTime: utils.GetCurrentTimeMillis(),
	}
	if err := s.offeringDAO.CreateWithTx(ctx, tx, offering); err != nil {
		return err
	}

	record := &models.Record{
		ID:         utils.GenerateID(),
		OfferingID: offering.ID,
		OwnerID:    owner.ID,
		Payload:    models.JSON(defaultRecordPayload),
	}
	return s.recordDAO.CreateWithTx(ctx, tx, record)
}

// Login verifies credentials and returns a signed token. A successful login
// is recorded in the audit trail.
func (s *AuthService) Login(ctx context.Context, request *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := s.userDAO.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperror.InvalidCredential("invalid email or password", nil)
		}
		s.logger.WithError(err).Error("Failed to look up user for login")
		return nil, apperror.Persistence("failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, apperror.InvalidCredential("invalid email or password", nil)
	}

	token, err := utils.IssueToken(s.cfg.Auth.TokenSecret, user.ID, user.Role, s.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, apperror.Persistence("failed to issue token", err)
	}

	s.auditService.Record(ctx, user.ID, models.ActionLogin, nil)

	return &models.AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		Token:     token,
	}, nil
}
