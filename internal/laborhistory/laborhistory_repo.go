package laborhistory

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Entry) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Entry, error)
}

type repository struct {
	store record.Store[Entry]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: record.NewStore[Entry](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{store: r.store.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.store.Create(ctx, e)
}

func (r *repository) ListByPersonnel(ctx context.Context, personalID int) ([]Entry, error) {
	return r.store.ListByPersonnel(ctx, personalID)
}
