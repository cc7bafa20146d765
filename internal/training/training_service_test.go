package training_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-personnel/internal/attachment"
	"go-personnel/internal/attachment/attachmenttest"
	"go-personnel/internal/record"
	"go-personnel/internal/training"
	trainingerrors "go-personnel/internal/training/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []training.Training
	rows    []training.Training
	listErr error
	deleted map[int]bool
}

func (f *fakeRepo) WithTx(tx *sql.Tx) training.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, t *training.Training) error {
	t.ID = len(f.created) + 1
	f.created = append(f.created, *t)
	return nil
}
func (f *fakeRepo) ListByPersonnel(ctx context.Context, personalID int) ([]training.Training, error) {
	return f.rows, f.listErr
}
func (f *fakeRepo) SoftDelete(ctx context.Context, id int) (bool, error) {
	return f.deleted[id], nil
}

type alwaysExists struct{}

func (alwaysExists) ExistsTx(ctx context.Context, tx *sql.Tx, personalID int) (bool, error) {
	return true, nil
}

func newService(t *testing.T, repo *fakeRepo) (training.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := attachment.NewLocalStorage(t.TempDir())
	uow := record.NewUnitOfWork(db, alwaysExists{}, attachment.NewManager(store))
	return training.NewService(uow, repo), mock
}

func TestTrainingService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc, mock := newService(t, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	got, err := svc.Create(context.Background(), training.CreateTrainingRequest{
		PersonalID: "4",
		Curso:      "Formación inicial para policía preventivo",
		Tipo:       "Presencial",
		Fecha:      "2023-09-01",
		Resultado:  "Acreditado",
	}, attachmenttest.FileHeader(t, attachmenttest.PDF("constancia.pdf")))

	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Nil(t, got.Institucion)
	assert.True(t, got.Activo)
	require.NotNil(t, got.ArchivoPDF)
	assert.Contains(t, *got.ArchivoPDF, "/uploads/formacion-inicial/formacion-")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainingService_ListAndDelete(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New(`pq: relation "formacion_inicial" does not exist`), deleted: map[int]bool{2: true}}
	svc, _ := newService(t, repo)

	rows, err := svc.ListByPersonnel(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.NoError(t, svc.Delete(context.Background(), 2))
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), trainingerrors.ErrTrainingNotFound)
}
