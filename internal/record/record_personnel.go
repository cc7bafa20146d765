package record

import (
	"context"
	"database/sql"

	"go-personnel/internal/shared/txconn"

	"gorm.io/gorm"
)

//go:generate mockgen -source=record_personnel.go -destination=mock/personnel_lookup_mock.go -package=mock
type PersonnelLookup interface {
	ExistsTx(ctx context.Context, tx *sql.Tx, personalID int) (bool, error)
}

type personnelLookup struct {
	db *gorm.DB
}

func NewPersonnelLookup(db *gorm.DB) PersonnelLookup {
	return &personnelLookup{db: db}
}

func (l *personnelLookup) ExistsTx(ctx context.Context, tx *sql.Tx, personalID int) (bool, error) {
	return PersonnelExists(ctx, txconn.Bind(ctx, l.db, tx), personalID)
}

// PersonnelExists checks the personal table through db, which may be bound to
// a transaction.
func PersonnelExists(ctx context.Context, db *gorm.DB, personalID int) (bool, error) {
	var exists bool
	err := db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM personal WHERE id = ?)", personalID).
		Scan(&exists).Error
	return exists, err
}
