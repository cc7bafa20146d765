package sanction

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Sanction) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Sanction, error)
}

type repository struct {
	record.Store[Sanction]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{record.NewStore[Sanction](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{r.Store.WithTx(tx)}
}
