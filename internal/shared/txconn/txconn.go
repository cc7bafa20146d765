package txconn

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle scoped to ctx that executes on tx when tx is not
// nil, so repositories can join a transaction opened on the raw *sql.DB.
func Bind(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	g := db.WithContext(ctx)
	if tx != nil {
		g.Statement.ConnPool = tx
	}
	return g
}
