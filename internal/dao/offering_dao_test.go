package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consenthub/consenthub-api/internal/models"
)

func TestOfferingUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	offeringDAO := NewOfferingDAO(db)

	mock.ExpectExec("UPDATE DATA_OFFERINGS").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := offeringDAO.Update(context.Background(), &models.Offering{
		ID:          "off-404",
		OwnerID:     "owner-1",
		Name:        "Renamed",
		Sensitivity: models.SensitivityLow,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferingListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	offeringDAO := NewOfferingDAO(db)

	rows := sqlmock.NewRows([]string{"ID", "OWNER_ID", "NAME", "DESCRIPTION", "SENSITIVITY", "CATEGORY", "CREATED_TIME"}).
		AddRow("off-2", "owner-1", "Health Data", "", "HIGH", "health", int64(2)).
		AddRow("off-1", "owner-1", "Credit Data", "", "MEDIUM", "finance", int64(1))

	mock.ExpectQuery("SELECT (.+) FROM DATA_OFFERINGS").
		WithArgs("owner-1").
		WillReturnRows(rows)

	offerings, err := offeringDAO.ListByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, offerings, 2)
	assert.Equal(t, "off-2", offerings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
