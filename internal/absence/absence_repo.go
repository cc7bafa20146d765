package absence

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Absence) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Absence, error)
}

type repository struct {
	record.Store[Absence]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{record.NewStore[Absence](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{r.Store.WithTx(tx)}
}
