package record_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-personnel/internal/attachment"
	"go-personnel/internal/attachment/attachmenttest"
	"go-personnel/internal/record"
	recorderrors "go-personnel/internal/record/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	exists bool
	err    error
}

func (f fakeLookup) ExistsTx(ctx context.Context, tx *sql.Tx, personalID int) (bool, error) {
	return f.exists, f.err
}

var testDescriptor = record.Descriptor{
	Name:         "evaluacion",
	Table:        "evaluaciones_control",
	Category:     attachment.CategoryEvaluations,
	FileField:    "archivo_pdf",
	OrderColumn:  "fecha_evaluacion",
	Capabilities: record.CapSoftDelete,
}

func setup(t *testing.T, lookup record.PersonnelLookup) (*record.UnitOfWork, sqlmock.Sqlmock, string) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	root := t.TempDir()
	store := attachment.NewLocalStorage(root)
	require.NoError(t, store.Prepare())

	return record.NewUnitOfWork(db, lookup, attachment.NewManager(store)), mock, root
}

func filesIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUnitOfWork_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("commits row and keeps file", func(t *testing.T) {
		uow, mock, root := setup(t, fakeLookup{exists: true})
		mock.ExpectBegin()
		mock.ExpectCommit()

		var got *string
		err := uow.Create(ctx, testDescriptor, 1, attachmenttest.FileHeader(t, attachmenttest.PDF("r.pdf")),
			func(ctx context.Context, tx *sql.Tx, filePath *string) error {
				got = filePath
				return nil
			})

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, strings.HasPrefix(*got, "/uploads/evaluaciones/"))
		assert.Len(t, filesIn(t, filepath.Join(root, "evaluaciones")), 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without file passes nil path", func(t *testing.T) {
		uow, mock, _ := setup(t, fakeLookup{exists: true})
		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := uow.Create(ctx, testDescriptor, 1, nil, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
			called = true
			assert.Nil(t, filePath)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("unknown personnel removes the uploaded file", func(t *testing.T) {
		uow, mock, root := setup(t, fakeLookup{exists: false})
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := uow.Create(ctx, testDescriptor, 99, attachmenttest.FileHeader(t, attachmenttest.PDF("r.pdf")),
			func(ctx context.Context, tx *sql.Tx, filePath *string) error {
				t.Fatal("insert must not run")
				return nil
			})

		assert.ErrorIs(t, err, recorderrors.ErrPersonnelNotFound)
		assert.Empty(t, filesIn(t, filepath.Join(root, "evaluaciones")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure removes the uploaded file", func(t *testing.T) {
		uow, mock, root := setup(t, fakeLookup{exists: true})
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := uow.Create(ctx, testDescriptor, 1, attachmenttest.FileHeader(t, attachmenttest.PDF("r.pdf")),
			func(ctx context.Context, tx *sql.Tx, filePath *string) error {
				return &pgconn.PgError{Code: "23503"}
			})

		assert.ErrorIs(t, err, recorderrors.ErrPersonnelNotFound)
		assert.Empty(t, filesIn(t, filepath.Join(root, "evaluaciones")))
	})

	t.Run("commit failure removes the uploaded file", func(t *testing.T) {
		uow, mock, root := setup(t, fakeLookup{exists: true})
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		err := uow.Create(ctx, testDescriptor, 1, attachmenttest.FileHeader(t, attachmenttest.PDF("r.pdf")),
			func(ctx context.Context, tx *sql.Tx, filePath *string) error { return nil })

		assert.EqualError(t, err, "connection reset")
		assert.Empty(t, filesIn(t, filepath.Join(root, "evaluaciones")))
	})

	t.Run("invalid attachment never opens a transaction", func(t *testing.T) {
		uow, mock, _ := setup(t, fakeLookup{exists: true})
		fh := attachmenttest.FileHeader(t, attachmenttest.File{Filename: "x.docx", Content: []byte("x")})

		err := uow.Create(ctx, testDescriptor, 1, fh, func(ctx context.Context, tx *sql.Tx, filePath *string) error { return nil })

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
