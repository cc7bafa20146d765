package profile

import (
	"context"
	"fmt"

	"go-personnel/internal/absence"
	"go-personnel/internal/evaluation"
	"go-personnel/internal/laborhistory"
	"go-personnel/internal/personnel"
	"go-personnel/internal/sanction"
	"go-personnel/internal/separation"
	"go-personnel/internal/shared/contextutil"
	"go-personnel/internal/training"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PersonnelReader interface {
	GetByID(ctx context.Context, id int) (personnel.PersonnelResponse, error)
}

type Lister[T any] interface {
	ListByPersonnel(ctx context.Context, personalID int) ([]T, error)
}

// Sources are the stores a profile is assembled from. A nil lister yields an
// empty list.
type Sources struct {
	Personnel    PersonnelReader
	Evaluations  Lister[evaluation.EvaluationResponse]
	Training     Lister[training.Training]
	LaborHistory Lister[laborhistory.Entry]
	Absences     Lister[absence.Absence]
	Sanctions    Lister[sanction.Sanction]
	Separations  Lister[separation.Separation]
}

type Service interface {
	GetProfile(ctx context.Context, personalID int) (Profile, error)
	ExportPDF(ctx context.Context, personalID int) ([]byte, string, error)
}

type service struct {
	src    Sources
	logger *zap.Logger
}

func NewService(src Sources, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{src: src, logger: l}
}

// GetProfile fails only when the officer is missing. Each record list is
// fetched concurrently and a failed fetch becomes an empty list.
func (s *service) GetProfile(ctx context.Context, personalID int) (Profile, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get profile requested", zap.String("request_id", rid), zap.Int("personal_id", personalID))

	officer, err := s.src.Personnel.GetByID(ctx, personalID)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{PersonnelResponse: officer}
	var g errgroup.Group
	fetch(ctx, &g, s.logger, "evaluaciones", s.src.Evaluations, personalID, &p.Evaluaciones)
	fetch(ctx, &g, s.logger, "formacion", s.src.Training, personalID, &p.Formacion)
	fetch(ctx, &g, s.logger, "historial", s.src.LaborHistory, personalID, &p.Historial)
	fetch(ctx, &g, s.logger, "incapacidades", s.src.Absences, personalID, &p.Incapacidades)
	fetch(ctx, &g, s.logger, "estimulos", s.src.Sanctions, personalID, &p.Estimulos)
	fetch(ctx, &g, s.logger, "separacion", s.src.Separations, personalID, &p.Separacion)
	_ = g.Wait()

	s.logger.Info("get profile success",
		zap.String("request_id", rid),
		zap.Int("personal_id", personalID),
		zap.Int("evaluaciones", len(p.Evaluaciones)),
		zap.Int("formacion", len(p.Formacion)),
		zap.Int("historial", len(p.Historial)),
		zap.Int("incapacidades", len(p.Incapacidades)),
		zap.Int("estimulos", len(p.Estimulos)),
		zap.Int("separacion", len(p.Separacion)),
	)
	return p, nil
}

func fetch[T any](ctx context.Context, g *errgroup.Group, logger *zap.Logger, section string, l Lister[T], personalID int, dst *[]T) {
	*dst = []T{}
	if l == nil {
		return
	}
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("profile section panicked",
					zap.String("section", section),
					zap.Int("personal_id", personalID),
					zap.Any("panic", r),
				)
			}
		}()
		rows, err := l.ListByPersonnel(ctx, personalID)
		if err != nil {
			logger.Warn("profile section degraded to empty",
				zap.String("section", section),
				zap.Int("personal_id", personalID),
				zap.Error(err),
			)
			return nil
		}
		if rows != nil {
			*dst = rows
		}
		return nil
	})
}

func (s *service) ExportPDF(ctx context.Context, personalID int) ([]byte, string, error) {
	p, err := s.GetProfile(ctx, personalID)
	if err != nil {
		return nil, "", err
	}
	doc, err := renderProfilePDF(p)
	if err != nil {
		s.logger.Error("render profile pdf failed", zap.Int("personal_id", personalID), zap.Error(err))
		return nil, "", err
	}
	return doc, pdfFilename(p), nil
}

func pdfFilename(p Profile) string {
	ref := p.CURP
	if ref == "" {
		ref = fmt.Sprint(p.ID)
	}
	return "Perfil_Policia_" + ref + ".pdf"
}
