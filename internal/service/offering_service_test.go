package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consenthub/consenthub-api/internal/apperror"
	"github.com/consenthub/consenthub-api/internal/models"
)

func newOfferingService(deps *testDeps) *OfferingService {
	return NewOfferingService(deps.OfferingDAO, deps.RecordDAO, deps.RequestDAO, deps.DB, deps.Logger)
}

func TestOfferingCreate_RejectsBadSensitivity(t *testing.T) {
	deps := newTestDeps(t)
	svc := newOfferingService(deps)

	offering, err := svc.Create(context.Background(), "owner-1", &models.CreateOfferingRequest{
		Name:        "Health Data",
		Sensitivity: "EXTREME",
	})

	assert.Nil(t, offering)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestOfferingCreate_SeedsRecordWhenPayloadGiven(t *testing.T) {
	deps := newTestDeps(t)
	svc := newOfferingService(deps)

	deps.Mock.ExpectBegin()
	deps.Mock.ExpectExec("INSERT INTO DATA_OFFERINGS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectExec("INSERT INTO DATA_RECORDS").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectCommit()

	offering, err := svc.Create(context.Background(), "owner-1", &models.CreateOfferingRequest{
		Name:        "Credit Data",
		Sensitivity: models.SensitivityMedium,
		Category:    "finance",
		Payload:     models.JSON(`{"creditScore": 750}`),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, offering.ID)
	assert.Equal(t, "owner-1", offering.OwnerID)
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

// Deleting an offering removes its requests and record in the same
// transaction; audit entries are untouched.
func TestOfferingDelete_CascadesInOneTransaction(t *testing.T) {
	deps := newTestDeps(t)
	svc := newOfferingService(deps)

	deps.Mock.ExpectBegin()
	deps.Mock.ExpectExec("DELETE FROM CONSENT_REQUESTS").
		WithArgs("off-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	deps.Mock.ExpectExec("DELETE FROM DATA_RECORDS").
		WithArgs("off-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectExec("DELETE FROM DATA_OFFERINGS").
		WithArgs("off-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.Mock.ExpectCommit()

	err := svc.Delete(context.Background(), "owner-1", "off-1")

	assert.NoError(t, err)
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestOfferingDelete_NotFoundRollsBack(t *testing.T) {
	deps := newTestDeps(t)
	svc := newOfferingService(deps)

	deps.Mock.ExpectBegin()
	deps.Mock.ExpectExec("DELETE FROM CONSENT_REQUESTS").
		WithArgs("off-404", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	deps.Mock.ExpectExec("DELETE FROM DATA_RECORDS").
		WithArgs("off-404", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	deps.Mock.ExpectExec("DELETE FROM DATA_OFFERINGS").
		WithArgs("off-404", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	deps.Mock.ExpectRollback()

	err := svc.Delete(context.Background(), "owner-1", "off-404")

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}

func TestUpsertRecord_NotFoundForForeignOffering(t *testing.T) {
	deps := newTestDeps(t)
	svc := newOfferingService(deps)

	deps.Mock.ExpectQuery("SELECT EXISTS").
		WithArgs("off-1", "intruder-1").
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(false))

	err := svc.UpsertRecord(context.Background(), "intruder-1", "off-1", &models.UpsertRecordRequest{
		Payload: models.JSON(`{"k": "v"}`),
	})

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.NoError(t, deps.Mock.ExpectationsWereMet())
}
