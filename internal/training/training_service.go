package training

import (
	"context"
	"database/sql"
	"mime/multipart"

	"go-personnel/internal/attachment"
	"go-personnel/internal/record"
	trainingerrors "go-personnel/internal/training/errors"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:         "formacion_inicial",
	Table:        "formacion_inicial",
	Category:     attachment.CategoryTraining,
	FileField:    "archivo_pdf",
	OrderColumn:  "fecha",
	Capabilities: record.CapSoftDelete,
}

type Service interface {
	Create(ctx context.Context, req CreateTrainingRequest, file *multipart.FileHeader) (Training, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Training, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	return &service{uow: uow, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTrainingRequest, file *multipart.FileHeader) (Training, error) {
	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Training{}, err
	}
	fecha, err := record.ParseDate("fecha", req.Fecha)
	if err != nil {
		return Training{}, err
	}

	t := Training{
		PersonalID:    personalID,
		Curso:         req.Curso,
		Tipo:          req.Tipo,
		Institucion:   record.Optional(req.Institucion),
		Fecha:         fecha,
		Resultado:     req.Resultado,
		Observaciones: record.Optional(req.Observaciones),
		Activo:        true,
	}

	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		t.ArchivoPDF = filePath
		return s.repo.WithTx(tx).Create(ctx, &t)
	})
	if err != nil {
		return Training{}, err
	}

	s.logger.Info("create training success", zap.Int("personal_id", personalID), zap.Int("training_id", t.ID))
	return t, nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Training, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Training, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("soft delete training failed", zap.Int("training_id", id), zap.Error(err))
		return err
	}
	if !ok {
		return trainingerrors.ErrTrainingNotFound
	}
	s.logger.Info("training deactivated", zap.Int("training_id", id))
	return nil
}
