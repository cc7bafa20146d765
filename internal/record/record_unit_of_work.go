package record

import (
	"context"
	"database/sql"
	"mime/multipart"

	"go-personnel/internal/attachment"
	recorderrors "go-personnel/internal/record/errors"
	"go-personnel/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Stager interface {
	Stage(ctx context.Context, fh *multipart.FileHeader, category attachment.Category) (*attachment.Staged, error)
}

// InsertFunc writes the record inside tx. filePath is nil when no file was sent.
type InsertFunc func(ctx context.Context, tx *sql.Tx, filePath *string) error

// UnitOfWork couples an optional attachment to the row that references it:
// the file is kept only if the transaction commits.
type UnitOfWork struct {
	db          *sql.DB
	personnel   PersonnelLookup
	attachments Stager
	logger      *zap.Logger
}

func NewUnitOfWork(db *sql.DB, personnel PersonnelLookup, attachments Stager, logger ...*zap.Logger) *UnitOfWork {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &UnitOfWork{
		db:          db,
		personnel:   personnel,
		attachments: attachments,
		logger:      l.Named("record.uow"),
	}
}

func (u *UnitOfWork) Create(
	ctx context.Context,
	d Descriptor,
	personalID int,
	file *multipart.FileHeader,
	insert InsertFunc,
) error {
	rid := contextutil.GetRequestID(ctx)
	log := u.logger.With(
		zap.String("request_id", rid),
		zap.String("record", d.Name),
		zap.Int("personal_id", personalID),
	)

	staged, err := u.attachments.Stage(ctx, file, d.Category)
	if err != nil {
		log.Warn("attachment rejected", zap.Error(err))
		return err
	}
	defer staged.Release(ctx)

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	exists, err := u.personnel.ExistsTx(ctx, tx, personalID)
	if err != nil {
		log.Error("personnel lookup failed", zap.Error(err))
		return err
	}
	if !exists {
		log.Warn("personnel not found")
		return recorderrors.ErrPersonnelNotFound
	}

	if err := insert(ctx, tx, staged.Path()); err != nil {
		log.Error("insert failed", zap.Error(err))
		return MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return err
	}
	staged.Commit()

	log.Debug("record committed", zap.Bool("with_attachment", staged.Path() != nil))
	return nil
}
