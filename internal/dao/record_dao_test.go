package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPayload_ReturnsOpaquePayload(t *testing.T) {
	db, mock := newMockDB(t)
	recordDAO := NewRecordDAO(db)

	payload := `{"creditScore": 750}`
	mock.ExpectQuery("SELECT DATA_PAYLOAD").
		WithArgs("off-1", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"DATA_PAYLOAD"}).AddRow([]byte(payload)))

	got, err := recordDAO.GetPayload(context.Background(), "off-1", "owner-1")

	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPayload_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	recordDAO := NewRecordDAO(db)

	mock.ExpectQuery("SELECT DATA_PAYLOAD").
		WithArgs("off-404", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"DATA_PAYLOAD"}))

	got, err := recordDAO.GetPayload(context.Background(), "off-404", "owner-1")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
