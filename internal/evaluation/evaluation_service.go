package evaluation

import (
	"context"
	"database/sql"
	"mime/multipart"
	"time"

	"go-personnel/internal/attachment"
	evaluationerrors "go-personnel/internal/evaluation/errors"
	"go-personnel/internal/record"
	"go-personnel/internal/shared/contextutil"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:         "evaluacion_control",
	Table:        "evaluaciones_control",
	Category:     attachment.CategoryEvaluations,
	FileField:    "archivo_pdf",
	OrderColumn:  "fecha_evaluacion",
	Capabilities: record.CapSoftDelete,
}

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest, file *multipart.FileHeader) (EvaluationResponse, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]EvaluationResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{uow: uow, repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest, file *multipart.FileHeader) (EvaluationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return EvaluationResponse{}, err
	}
	// Stale codes are accepted and flagged through esVigente.
	cuip, err := ParseCUIP(req.CUIP)
	if err != nil {
		s.logger.Warn("create evaluation invalid cuip", zap.String("request_id", rid), zap.String("cuip", req.CUIP))
		return EvaluationResponse{}, err
	}
	fecha, err := record.ParseDate("fecha_evaluacion", req.FechaEvaluacion)
	if err != nil {
		return EvaluationResponse{}, err
	}
	vigencia, err := record.ParseDate("vigencia", req.Vigencia)
	if err != nil {
		return EvaluationResponse{}, err
	}

	e := Evaluation{
		PersonalID:      personalID,
		CUIP:            cuip.Raw,
		TipoEvaluacion:  req.TipoEvaluacion,
		FechaEvaluacion: fecha,
		Resultado:       req.Resultado,
		Vigencia:        vigencia,
		Activo:          true,
	}

	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		e.ArchivoPDF = filePath
		return s.repo.WithTx(tx).Create(ctx, &e)
	})
	if err != nil {
		return EvaluationResponse{}, err
	}

	s.logger.Info("create evaluation success",
		zap.String("request_id", rid),
		zap.Int("personal_id", personalID),
		zap.Int("evaluation_id", e.ID),
	)
	return toResponse(e, s.now()), nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]EvaluationResponse, error) {
	rows, err := record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Evaluation, error) {
		return s.repo.ListActiveByPersonnel(ctx, personalID)
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]EvaluationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toResponse(r, now))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("soft delete evaluation failed", zap.Int("evaluation_id", id), zap.Error(err))
		return err
	}
	if !ok {
		return evaluationerrors.ErrEvaluationNotFound
	}

	s.logger.Info("evaluation deactivated", zap.Int("evaluation_id", id))
	return nil
}
