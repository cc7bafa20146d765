package competency

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Competency) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Competency, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
}

type repository struct {
	record.Store[Competency]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{record.NewStore[Competency](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{r.Store.WithTx(tx)}
}
