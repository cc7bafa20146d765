package record

import (
	"context"
	"database/sql"

	recorderrors "go-personnel/internal/record/errors"
	"go-personnel/internal/shared/txconn"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the gorm access shared by every record type. T must map to
// d.Table.
type Store[T any] struct {
	db *gorm.DB
	tx *sql.Tx
	d  Descriptor
}

func NewStore[T any](db *gorm.DB, d Descriptor) Store[T] {
	return Store[T]{db: db, d: d}
}

func (s Store[T]) WithTx(tx *sql.Tx) Store[T] {
	s.tx = tx
	return s
}

func (s Store[T]) conn(ctx context.Context) *gorm.DB {
	return txconn.Bind(ctx, s.db, s.tx).Table(s.d.Table)
}

func (s Store[T]) Create(ctx context.Context, row *T) error {
	return s.conn(ctx).Create(row).Error
}

// ListByPersonnel returns newest first; soft-deletable types only return
// active rows.
func (s Store[T]) ListByPersonnel(ctx context.Context, personalID int) ([]T, error) {
	q := s.conn(ctx).Where("personal_id = ?", personalID)
	if s.d.Can(CapSoftDelete) {
		q = q.Where("activo = ?", true)
	}
	var rows []T
	err := q.Order(s.d.ListOrder()).Find(&rows).Error
	return rows, err
}

// SoftDelete reports false when no row has the id.
func (s Store[T]) SoftDelete(ctx context.Context, id int) (bool, error) {
	if !s.d.Can(CapSoftDelete) {
		return false, recorderrors.ErrDeleteNotSupported
	}
	res := s.conn(ctx).Where("id = ?", id).Update("activo", false)
	return res.RowsAffected > 0, res.Error
}

// ListTolerant runs list and turns a missing table into an empty result.
func ListTolerant[T any](logger *zap.Logger, d Descriptor, personalID int, list func() ([]T, error)) ([]T, error) {
	rows, err := list()
	if IsUndefinedTable(err) {
		logger.Warn("record table missing, returning empty list",
			zap.String("table", d.Table),
			zap.Int("personal_id", personalID),
		)
		return []T{}, nil
	}
	if err != nil {
		logger.Error("list records failed",
			zap.String("table", d.Table),
			zap.Int("personal_id", personalID),
			zap.Error(err),
		)
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
