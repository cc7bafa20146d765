package sanction

import (
	"context"
	"database/sql"
	"mime/multipart"

	"go-personnel/internal/attachment"
	"go-personnel/internal/record"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:        "estimulo_sancion",
	Table:       "estimulos_sanciones",
	Category:    attachment.CategorySanctions,
	FileField:   "documento",
	OrderColumn: "fecha",
}

type Service interface {
	Create(ctx context.Context, req CreateSanctionRequest, file *multipart.FileHeader) (Sanction, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Sanction, error)
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sanction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sanction.service")
	}
	return &service{uow: uow, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSanctionRequest, file *multipart.FileHeader) (Sanction, error) {
	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Sanction{}, err
	}
	fecha, err := record.ParseDate("fecha", req.Fecha)
	if err != nil {
		return Sanction{}, err
	}

	row := Sanction{
		PersonalID:   personalID,
		Tipo:         req.Tipo,
		Fundamento:   record.Optional(req.Fundamento),
		Descripcion:  record.Optional(req.Descripcion),
		Fecha:        fecha,
		Motivo:       record.Optional(req.Motivo),
		Resultado:    record.Optional(req.Resultado),
		Cumplimiento: record.Optional(req.Cumplimiento),
	}
	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		row.Documento = filePath
		return s.repo.WithTx(tx).Create(ctx, &row)
	})
	if err != nil {
		return Sanction{}, err
	}

	s.logger.Info("sanction recorded",
		zap.Int("personal_id", personalID),
		zap.Int("sanction_id", row.ID),
		zap.String("tipo", row.Tipo),
	)
	return row, nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Sanction, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Sanction, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}
