package personnel

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	"go-personnel/internal/bootstrap"
	"go-personnel/internal/events"
	"go-personnel/internal/messaging/kafka"
	personnelerrors "go-personnel/internal/personnel/errors"
	"go-personnel/internal/shared/contextutil"

	"go.uber.org/zap"
)

var curpPattern = regexp.MustCompile(`^[A-Za-z0-9]{18}$`)

func normalizeCURP(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

//go:generate mockgen -source=personnel_service.go -destination=mock/personnel_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req PersonnelRequest) (PersonnelResponse, error)
	GetAll(ctx context.Context) ([]PersonnelResponse, error)
	GetByID(ctx context.Context, id int) (PersonnelResponse, error)
	Search(ctx context.Context, term string) ([]PersonnelResponse, error)
	Update(ctx context.Context, id int, req PersonnelRequest) (PersonnelResponse, error)
	Delete(ctx context.Context, id int) error
	SetStatus(ctx context.Context, id int, status string) (PersonnelResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, audit, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("personnel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personnel.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, audit: audit, logger: l}
}

func (s *service) Create(ctx context.Context, req PersonnelRequest) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create personnel requested",
		zap.String("request_id", rid),
		zap.String("curp", req.CURP),
	)

	p, err := req.toEntity()
	if err != nil {
		s.logger.Warn("create personnel invalid input", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, err
	}
	p.Estatus = StatusActive

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create personnel begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, &p); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("create personnel persist failed", zap.String("request_id", rid), zap.Error(err))
		} else {
			s.logger.Warn("create personnel rejected", zap.String("request_id", rid), zap.Error(mapped))
		}
		return PersonnelResponse{}, mapped
	}

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(rid, p.ID, events.PersonnelCreated, events.PersonnelLifecycleTopic,
			events.PersonnelCreatedEvent{
				EventType:  events.PersonnelCreated,
				RequestID:  rid,
				PersonalID: p.ID,
				CURP:       p.CURP,
				Estatus:    p.Estatus,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return PersonnelResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("create personnel outbox persist failed",
				zap.String("request_id", rid),
				zap.Int("personal_id", p.ID),
				zap.Error(err),
			)
			return PersonnelResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create personnel commit failed", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, err
	}

	s.logger.Info("create personnel success",
		zap.String("request_id", rid),
		zap.Int("personal_id", p.ID),
	)
	return mapToResponse(p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PersonnelResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all personnel failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id int) (PersonnelResponse, error) {
	s.logger.Debug("get personnel by id requested", zap.Int("personal_id", id))
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonnelResponse{}, s.readFailed("get personnel by id failed", id, err)
	}
	return mapToResponse(*p), nil
}

// Search treats an 18 character alphanumeric term as a CURP and looks it up
// exactly; any other term is a name search.
func (s *service) Search(ctx context.Context, term string) ([]PersonnelResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, personnelerrors.ErrEmptySearch
	}

	var (
		rows []Personnel
		err  error
	)
	if curpPattern.MatchString(term) {
		rows, err = s.repo.FindByCURP(ctx, normalizeCURP(term))
	} else {
		rows, err = s.repo.SearchByName(ctx, term, SearchLimit)
	}
	if err != nil {
		s.logger.Error("search personnel failed", zap.String("term", term), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id int, req PersonnelRequest) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update personnel requested",
		zap.String("request_id", rid),
		zap.Int("personal_id", id),
	)

	p, err := req.toEntity()
	if err != nil {
		s.logger.Warn("update personnel invalid input", zap.Int("personal_id", id), zap.Error(err))
		return PersonnelResponse{}, err
	}
	p.ID = id

	if err := s.repo.Update(ctx, &p); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("update personnel persist failed", zap.Int("personal_id", id), zap.Error(err))
		} else {
			s.logger.Warn("update personnel rejected", zap.Int("personal_id", id), zap.Error(mapped))
		}
		return PersonnelResponse{}, mapped
	}

	s.logger.Info("update personnel success", zap.String("request_id", rid), zap.Int("personal_id", id))
	return mapToResponse(p), nil
}

// Delete removes only the personal row. Child records and the profile photo
// are left in place.
func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete personnel requested", zap.String("request_id", rid), zap.Int("personal_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.readFailed("delete personnel failed", id, err)
	}

	s.auditLog(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditPersonnelDeleted,
		Message: "Personnel deleted",
		Meta:    map[string]any{"personal_id": id},
	})
	s.logger.Info("delete personnel success", zap.String("request_id", rid), zap.Int("personal_id", id))
	return nil
}

func (s *service) SetStatus(ctx context.Context, id int, status string) (PersonnelResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if !ValidStatus(status) {
		s.logger.Warn("set status rejected",
			zap.String("request_id", rid),
			zap.Int("personal_id", id),
			zap.String("estatus", status),
		)
		return PersonnelResponse{}, personnelerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set status begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, err
	}
	defer tx.Rollback()

	p, err := s.repo.WithTx(tx).UpdateStatus(ctx, id, status)
	if err != nil {
		return PersonnelResponse{}, s.readFailed("set status failed", id, err)
	}

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(rid, id, events.PersonnelStatusChanged, events.PersonnelLifecycleTopic,
			events.PersonnelStatusChangedEvent{
				EventType:  events.PersonnelStatusChanged,
				RequestID:  rid,
				PersonalID: id,
				Estatus:    status,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return PersonnelResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("set status outbox persist failed", zap.Int("personal_id", id), zap.Error(err))
			return PersonnelResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set status commit failed", zap.String("request_id", rid), zap.Error(err))
		return PersonnelResponse{}, err
	}

	s.auditLog(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditPersonnelStatusChanged,
		Message: "Personnel status changed",
		Meta:    map[string]any{"personal_id": id, "estatus": status},
	})
	s.logger.Info("set status success",
		zap.String("request_id", rid),
		zap.Int("personal_id", id),
		zap.String("estatus", status),
	)
	return mapToResponse(*p), nil
}

func (s *service) readFailed(msg string, id int, err error) error {
	mapped := mapRepositoryError(err)
	if mapped == err {
		s.logger.Error(msg, zap.Int("personal_id", id), zap.Error(err))
	} else {
		s.logger.Warn(msg, zap.Int("personal_id", id), zap.Error(mapped))
	}
	return mapped
}

func (s *service) auditLog(ctx context.Context, entry bootstrap.AuditLog) {
	if s.audit != nil {
		s.audit.Log(ctx, entry)
	}
}
