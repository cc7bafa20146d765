package record_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-personnel/internal/record"
	recorderrors "go-personnel/internal/record/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestDescriptor_Can(t *testing.T) {
	assert.True(t, testDescriptor.Can(record.CapSoftDelete))
	assert.False(t, record.Descriptor{}.Can(record.CapSoftDelete))
	assert.Equal(t, "fecha_evaluacion DESC, id DESC", testDescriptor.ListOrder())
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, record.IsUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, record.IsUndefinedTable(errors.New(`relation "historial_laboral" does not exist`)))
	assert.False(t, record.IsUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, record.IsUndefinedTable(nil))
}

func TestMapRepositoryError(t *testing.T) {
	assert.ErrorIs(t, record.MapRepositoryError(gorm.ErrRecordNotFound), recorderrors.ErrRecordNotFound)
	assert.ErrorIs(t, record.MapRepositoryError(&pgconn.PgError{Code: "23503"}), recorderrors.ErrPersonnelNotFound)
	other := errors.New("boom")
	assert.Equal(t, other, record.MapRepositoryError(other))
	assert.NoError(t, record.MapRepositoryError(nil))
}

func TestParse(t *testing.T) {
	d, err := record.ParseDate("fecha", " 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, record.NewDate(2024, time.February, 29), d)

	_, err = record.ParseDate("fecha", "29/02/2024")
	assert.EqualError(t, err, "fecha no es válido")

	opt, err := record.ParseOptionalDate("cup_vigencia", "")
	assert.NoError(t, err)
	assert.Nil(t, opt)

	id, err := record.ParsePersonalID("12")
	assert.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = record.ParsePersonalID("abc")
	assert.ErrorIs(t, err, recorderrors.ErrInvalidPersonalID)
	_, err = record.ParseRecordID("0")
	assert.ErrorIs(t, err, recorderrors.ErrInvalidRecordID)

	assert.Nil(t, record.Optional("   "))
	assert.Equal(t, "x", *record.Optional(" x "))
}

func TestPersonnelLookup_ExistsTx(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM personal WHERE id = \$1\)`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	tx, err := sqlDB.Begin()
	require.NoError(t, err)
	ok, err := record.NewPersonnelLookup(gdb).ExistsTx(context.Background(), tx, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
