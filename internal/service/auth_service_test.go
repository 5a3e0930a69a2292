package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/config"
	"github.com/consenthub/consenthub-api/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			TokenSecret: "test-secret",
			TokenTTL:    time.Hour,
			BcryptCost:  bcrypt.MinCost,
		},
		Provisioning: config.ProvisioningConfig{
			Enabled:             true,
			OfferingName:        "Default Data Offering",
			OfferingDescription: "Automatically provisioned on registration",
			OfferingSensitivity: models.SensitivityMedium,
			OfferingCategory:    "general",
		},
	}
}

func newAuthService(deps *testDeps) *AuthService {
	return NewAuthService(deps.UserDAO, deps.OfferingDAO, deps.RecordDAO, deps.Audit, deps.DB, testConfig(), deps.Logger)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	deps.Mock.ExpectQuery("SELECT EXISTS").
		WithArgs("dup@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(true))

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "password123",
		Role:      "consumer",
		FirstName: "Dana",
		LastName:  "Dupe",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:     "user@example.com",
		Password:  "password123",
		Role:      "admin",
		FirstName: "Ada",
		LastName:  "Admin",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRegister_OwnerGetsProvisionedOffering(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	deps.Mock.ExpectQuery("SELECT EXISTS").
		WithArgs("owner@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(false))
	deps.Mock.ExpectBegin()
	deps.Mock.ExpectExec("INSERT INTO USERS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectExec("INSERT INTO DATA_OFFERINGS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectExec("INSERT INTO DATA_RECORDS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectCommit()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:     "owner@example.com",
		Password:  "password123",
		Role:      "owner",
		FirstName: "Olive",
		LastName:  "Owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, "owner", resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestRegister_ConsumerSkipsProvisioning(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	deps.Mock.ExpectQuery("SELECT EXISTS").
		WithArgs("consumer@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(false))
	deps.Mock.ExpectBegin()
	deps.Mock.ExpectExec("INSERT INTO USERS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectCommit()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:     "consumer@example.com",
		Password:  "password123",
		Role:      "consumer",
		FirstName: "Casey",
		LastName:  "Consumer",
	})

	require.NoError(t, err)
	assert.Equal(t, "consumer", resp.Role)
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"ID", "EMAIL", "PASSWORD_HASH", "ROLE", "FIRST_NAME", "LAST_NAME",
		"PHONE", "LOCATION", "BIO", "COMPANY", "WEBSITE", "CREATED_TIME"}).
		AddRow("user-1", "user@example.com", string(hash), "consumer", "Casey", "Consumer",
			nil, nil, nil, nil, nil, int64(1))

	deps.Mock.ExpectQuery("SELECT (.+) FROM USERS").
		WithArgs("user@example.com").
		WillReturnRows(rows)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestLogin_UnknownEmailGetsSameError(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	deps.Mock.ExpectQuery("SELECT (.+) FROM USERS").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestLogin_SuccessAuditsAndIssuesToken(t *testing.T) {
	deps := newTestDeps(t)
	svc := newAuthService(deps)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"ID", "EMAIL", "PASSWORD_HASH", "ROLE", "FIRST_NAME", "LAST_NAME",
		"PHONE", "LOCATION", "BIO", "COMPANY", "WEBSITE", "CREATED_TIME"}).
		AddRow("user-1", "user@example.com", string(hash), "consumer", "Casey", "Consumer",
			nil, nil, nil, nil, nil, int64(1))

	deps.Mock.ExpectQuery("SELECT (.+) FROM USERS").
		WithArgs("user@example.com").
		WillReturnRows(rows)
	deps.Mock.ExpectExec("INSERT INTO AUDIT_LOGS").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}
