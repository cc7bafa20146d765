package training

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Training) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Training, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
}

type repository struct {
	record.Store[Training]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{record.NewStore[Training](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{r.Store.WithTx(tx)}
}
