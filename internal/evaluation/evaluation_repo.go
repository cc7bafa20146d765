package evaluation

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Evaluation) error
	ListActiveByPersonnel(ctx context.Context, personalID int) ([]Evaluation, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
}

type repository struct {
	store record.Store[Evaluation]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: record.NewStore[Evaluation](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.store.Create(ctx, e)
}

func (r *repository) ListActiveByPersonnel(ctx context.Context, personalID int) ([]Evaluation, error) {
	return r.store.ListByPersonnel(ctx, personalID)
}

func (r *repository) SoftDelete(ctx context.Context, id int) (bool, error) {
	return r.store.SoftDelete(ctx, id)
}
