package migration_test

import (
	"context"
	"errors"
	"testing"

	"go-personnel/internal/migration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupBootstrapper(t *testing.T) (*migration.Bootstrapper, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	b, err := migration.New(gdb)
	require.NoError(t, err)
	return b, mock
}

func expectExists(mock sqlmock.Sqlmock, table string, exists bool) {
	mock.ExpectQuery("information_schema.tables").
		WithArgs(table).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestBootstrapper_EnsureTable(t *testing.T) {
	ctx := context.Background()

	t.Run("existing table is a no-op", func(t *testing.T) {
		b, mock := setupBootstrapper(t)
		expectExists(mock, migration.TableHistorialLaboral, true)

		err := b.EnsureTable(ctx, migration.TableHistorialLaboral)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table runs its ddl in a transaction", func(t *testing.T) {
		b, mock := setupBootstrapper(t)
		expectExists(mock, migration.TableIncapacidadesAusencias, false)

		stmts := b.Statements(migration.TableIncapacidadesAusencias)
		require.Len(t, stmts, 2)
		assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS incapacidades_ausencias")

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS incapacidades_ausencias").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_incapacidades_ausencias_personal").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := b.EnsureTable(ctx, migration.TableIncapacidadesAusencias)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ddl failure is surfaced", func(t *testing.T) {
		b, mock := setupBootstrapper(t)
		expectExists(mock, migration.TableSeparacionServicio, false)

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS separacion_servicio").
			WillReturnError(errors.New("permission denied for schema public"))
		mock.ExpectRollback()

		err := b.EnsureTable(ctx, migration.TableSeparacionServicio)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown table", func(t *testing.T) {
		b, _ := setupBootstrapper(t)

		err := b.EnsureTable(ctx, "bitacora")

		assert.Error(t, err)
	})
}

func TestBootstrapper_RunAll(t *testing.T) {
	b, mock := setupBootstrapper(t)

	tables := migration.Tables()
	assert.Equal(t, migration.TablePersonal, tables[0])

	for _, table := range tables {
		expectExists(mock, table, true)
	}

	err := b.RunAll(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
