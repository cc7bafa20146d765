package separation

import (
	"context"
	"database/sql"

	"go-personnel/internal/record"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Separation) error
	ListByPersonnel(ctx context.Context, personalID int) ([]Separation, error)
}

type repository struct {
	record.Store[Separation]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{record.NewStore[Separation](db, Descriptor)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{r.Store.WithTx(tx)}
}
