package personnel

import (
	"errors"
	"strings"

	personnelerrors "go-personnel/internal/personnel/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const curpConstraint = "personal_curp_key"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personnelerrors.ErrPersonnelNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == curpConstraint:
			return personnelerrors.ErrCURPAlreadyExists
		case pgErr.Code == "23503":
			// child tables reference personal(id) without cascade
			return personnelerrors.ErrPersonnelHasRecords
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, curpConstraint) {
		return personnelerrors.ErrCURPAlreadyExists
	}

	return err
}
