package separation

import (
	"context"
	"database/sql"
	"mime/multipart"
	"time"

	"go-personnel/internal/attachment"
	"go-personnel/internal/events"
	"go-personnel/internal/messaging/kafka"
	"go-personnel/internal/record"
	"go-personnel/internal/shared/contextutil"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:        "separacion_servicio",
	Table:       "separacion_servicio",
	Category:    attachment.CategorySeparation,
	FileField:   "documentos",
	OrderColumn: "fecha_baja",
}

type Service interface {
	Create(ctx context.Context, req CreateSeparationRequest, file *multipart.FileHeader) (Separation, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Separation, error)
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(uow, repo, nil, logger...)
}

// NewServiceWithOutbox also queues a personnel.separated event in the same
// transaction as the separation row.
func NewServiceWithOutbox(uow *record.UnitOfWork, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("separation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("separation.service")
	}
	return &service{uow: uow, repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSeparationRequest, file *multipart.FileHeader) (Separation, error) {
	rid := contextutil.GetRequestID(ctx)

	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Separation{}, err
	}
	fechaBaja, err := record.ParseDate("fecha_baja", req.FechaBaja)
	if err != nil {
		return Separation{}, err
	}

	row := Separation{PersonalID: personalID, Motivo: req.Motivo, FechaBaja: fechaBaja}
	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		row.Documentos = filePath
		if err := s.repo.WithTx(tx).Create(ctx, &row); err != nil {
			return err
		}
		return s.enqueueSeparated(ctx, tx, rid, row)
	})
	if err != nil {
		return Separation{}, err
	}

	s.logger.Info("service separation recorded",
		zap.String("request_id", rid),
		zap.Int("personal_id", personalID),
		zap.Int("separation_id", row.ID),
	)
	return row, nil
}

func (s *service) enqueueSeparated(ctx context.Context, tx *sql.Tx, rid string, row Separation) error {
	if s.outbox == nil {
		return nil
	}
	evt, err := kafka.NewOutboxEvent(rid, row.PersonalID, events.PersonnelSeparated, events.PersonnelLifecycleTopic,
		events.PersonnelSeparatedEvent{
			EventType:    events.PersonnelSeparated,
			RequestID:    rid,
			PersonalID:   row.PersonalID,
			SeparacionID: row.ID,
			Motivo:       row.Motivo,
			FechaBaja:    row.FechaBaja.Format(record.DateLayout),
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, evt)
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Separation, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Separation, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}
