package absence

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strings"

	"go-personnel/internal/attachment"
	"go-personnel/internal/record"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:        "incapacidad_ausencia",
	Table:       "incapacidades_ausencias",
	Category:    attachment.CategoryAbsences,
	FileField:   "documentos",
	OrderColumn: "fecha_registro",
}

type Service interface {
	Create(ctx context.Context, req CreateAbsenceRequest, file *multipart.FileHeader) (Absence, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Absence, error)
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{uow: uow, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAbsenceRequest, file *multipart.FileHeader) (Absence, error) {
	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Absence{}, err
	}

	a := Absence{
		PersonalID:               personalID,
		Motivo:                   strings.TrimSpace(req.Motivo),
		Fechas:                   strings.TrimSpace(req.Fechas),
		TrayectoriaInstitucional: record.Optional(req.TrayectoriaInstitucional),
	}
	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		a.Documentos = filePath
		return s.repo.WithTx(tx).Create(ctx, &a)
	})
	if err != nil {
		return Absence{}, err
	}

	s.logger.Info("absence recorded", zap.Int("personal_id", personalID), zap.Int("absence_id", a.ID))
	return a, nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Absence, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Absence, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}
