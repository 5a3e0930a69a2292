package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consenthub/consenthub-api/internal/models"
)

func TestUpdateStatusFrom_Success(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	mock.ExpectExec("UPDATE CONSENT_REQUESTS").
		WithArgs(models.StatusApproved, int64(1700000000000), "req-1", models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := requestDAO.UpdateStatusFrom(context.Background(), "req-1", models.StatusPending, models.StatusApproved, 1700000000000)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusFrom_NoMatchingRow(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	// Another writer already moved the request out of PENDING
	mock.ExpectExec("UPDATE CONSENT_REQUESTS").
		WithArgs(models.StatusApproved, int64(1700000000000), "req-1", models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := requestDAO.UpdateStatusFrom(context.Background(), "req-1", models.StatusPending, models.StatusApproved, 1700000000000)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForOwner_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	mock.ExpectQuery("SELECT (.+) FROM CONSENT_REQUESTS").
		WithArgs("req-404", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	request, err := requestDAO.GetByIDForOwner(context.Background(), "req-404", "owner-1")

	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForOwner_ScopesToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	rows := sqlmock.NewRows([]string{"ID", "CONSUMER_ID", "OWNER_ID", "OFFERING_ID", "PURPOSE", "STATUS", "CREATED_TIME", "UPDATED_TIME"}).
		AddRow("req-1", "consumer-1", "owner-1", "off-1", "research", "PENDING", int64(1), int64(1))

	mock.ExpectQuery("SELECT (.+) FROM CONSENT_REQUESTS").
		WithArgs("req-1", "owner-1").
		WillReturnRows(rows)

	request, err := requestDAO.GetByIDForOwner(context.Background(), "req-1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, "req-1", request.ID)
	assert.Equal(t, "owner-1", request.OwnerID)
	assert.Equal(t, string(models.StatusPending), request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatusForTuple_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	mock.ExpectQuery("SELECT STATUS").
		WithArgs("consumer-1", "owner-1", "off-1").
		WillReturnRows(sqlmock.NewRows([]string{"STATUS"}))

	status, err := requestDAO.GetStatusForTuple(context.Background(), "consumer-1", "owner-1", "off-1")

	assert.Empty(t, status)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsOpenForTuple(t *testing.T) {
	db, mock := newMockDB(t)
	requestDAO := NewConsentRequestDAO(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("consumer-1", "owner-1", "off-1", models.StatusPending, models.StatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"EXISTS"}).AddRow(true))

	exists, err := requestDAO.ExistsOpenForTuple(context.Background(), "consumer-1", "owner-1", "off-1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
