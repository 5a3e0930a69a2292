package service

import (
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/database"
)

// testDeps contains common test dependencies backed by a sqlmock connection
type testDeps struct {
	DB          *database.DB
	Mock        sqlmock.Sqlmock
	UserDAO     *dao.UserDAO
	OfferingDAO *dao.OfferingDAO
	RecordDAO   *dao.RecordDAO
	RequestDAO  *dao.ConsentRequestDAO
	AuditLogDAO *dao.AuditLogDAO
	Audit       *AuditService
	Logger      *logrus.Logger
}

// newTestDeps creates the DAO/service fixtures shared by service tests
func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db := database.New(sqlx.NewDb(mockDB, "sqlmock"), logger)
	auditLogDAO := dao.NewAuditLogDAO(db)

	return &testDeps{
		DB:          db,
		Mock:        mock,
		UserDAO:     dao.NewUserDAO(db),
		OfferingDAO: dao.NewOfferingDAO(db),
		RecordDAO:   dao.NewRecordDAO(db),
		RequestDAO:  dao.NewConsentRequestDAO(db),
		AuditLogDAO: auditLogDAO,
		Audit:       NewAuditService(auditLogDAO, logger),
		Logger:      logger,
	}
}
