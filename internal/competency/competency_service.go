package competency

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strconv"
	"strings"

	"go-personnel/internal/attachment"
	competencyerrors "go-personnel/internal/competency/errors"
	"go-personnel/internal/record"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:         "competencia_basica",
	Table:        "competencias_basicas",
	Category:     attachment.CategoryCompetencies,
	FileField:    "archivo_pdf",
	OrderColumn:  "fecha",
	Capabilities: record.CapSoftDelete,
}

type Service interface {
	Create(ctx context.Context, req CreateCompetencyRequest, file *multipart.FileHeader) (Competency, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Competency, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("competency.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("competency.service")
	}
	return &service{uow: uow, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCompetencyRequest, file *multipart.FileHeader) (Competency, error) {
	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Competency{}, err
	}
	years, err := strconv.Atoi(strings.TrimSpace(req.Vigencia))
	if err != nil || years < 0 {
		return Competency{}, competencyerrors.ErrInvalidVigencia
	}
	fecha, err := record.ParseDate("fecha", req.date())
	if err != nil {
		return Competency{}, err
	}

	c := Competency{
		PersonalID:    personalID,
		Vigencia:      years,
		Resultado:     req.Resultado,
		Fecha:         fecha,
		Institucion:   req.Institucion,
		Enlaces:       record.Optional(req.Enlaces),
		Observaciones: record.Optional(req.Observaciones),
		Activo:        true,
	}

	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		c.ArchivoPDF = filePath
		return s.repo.WithTx(tx).Create(ctx, &c)
	})
	if err != nil {
		return Competency{}, err
	}

	s.logger.Info("create competency success", zap.Int("personal_id", personalID), zap.Int("competency_id", c.ID))
	return c, nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Competency, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Competency, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return competencyerrors.ErrCompetencyNotFound
	}
	s.logger.Info("competency deactivated", zap.Int("competency_id", id))
	return nil
}
