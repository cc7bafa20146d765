package laborhistory

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strconv"
	"strings"

	"go-personnel/internal/attachment"
	"go-personnel/internal/record"

	"go.uber.org/zap"
)

var Descriptor = record.Descriptor{
	Name:        "historial_laboral",
	Table:       "historial_laboral",
	Category:    attachment.CategoryLaborHistory,
	FileField:   "documento_comprobatorio",
	OrderColumn: "fecha_registro",
}

type Service interface {
	Create(ctx context.Context, req CreateEntryRequest, file *multipart.FileHeader) (Entry, error)
	ListByPersonnel(ctx context.Context, personalID int) ([]Entry, error)
}

type service struct {
	uow    *record.UnitOfWork
	repo   Repository
	logger *zap.Logger
}

func NewService(uow *record.UnitOfWork, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("laborhistory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("laborhistory.service")
	}
	return &service{uow: uow, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEntryRequest, file *multipart.FileHeader) (Entry, error) {
	personalID, err := record.ParsePersonalID(req.PersonalID)
	if err != nil {
		return Entry{}, err
	}
	cupVigencia, err := record.ParseOptionalDate("cup_vigencia", req.CUPVigencia)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		PersonalID:          personalID,
		CUP:                 strings.TrimSpace(req.CUP),
		CUPVigencia:         cupVigencia,
		Funcion:             req.Funcion,
		Direccion:           record.Optional(req.Direccion),
		Periodo:             record.Optional(req.Periodo),
		PortacionArmasFuego: parseFlag(req.PortacionArmasFuego),
	}

	err = s.uow.Create(ctx, Descriptor, personalID, file, func(ctx context.Context, tx *sql.Tx, filePath *string) error {
		e.DocumentoComprobatorio = filePath
		return s.repo.WithTx(tx).Create(ctx, &e)
	})
	if err != nil {
		return Entry{}, err
	}

	s.logger.Info("labor history entry created", zap.Int("personal_id", personalID), zap.Int("entry_id", e.ID))
	return e, nil
}

func (s *service) ListByPersonnel(ctx context.Context, personalID int) ([]Entry, error) {
	return record.ListTolerant(s.logger, Descriptor, personalID, func() ([]Entry, error) {
		return s.repo.ListByPersonnel(ctx, personalID)
	})
}

// parseFlag reads an HTML checkbox or boolean form value.
func parseFlag(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "on" || v == "si" || v == "sí" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
