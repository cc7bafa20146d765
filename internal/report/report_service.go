package report

import (
	"context"
	"strings"
	"time"

	"go-personnel/internal/personnel"
	reporterrors "go-personnel/internal/report/errors"
	"go-personnel/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	summaryKey          = "report:summary"
	summaryQueryTimeout = 30 * time.Second
)

// StatusSetter changes an officer's service state.
type StatusSetter interface {
	SetStatus(ctx context.Context, id int, status string) (personnel.PersonnelResponse, error)
}

type Service interface {
	Search(ctx context.Context, term string) ([]SearchRow, error)
	Summary(ctx context.Context) (Summary, error)
	SetStatus(ctx context.Context, id int, status string) (personnel.PersonnelResponse, error)
	ExportSummaryXLSX(ctx context.Context) ([]byte, error)
}

type service struct {
	repo   Repository
	status StatusSetter
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, status StatusSetter, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, status: status, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Search(ctx context.Context, term string) ([]SearchRow, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, reporterrors.ErrEmptyQuery
	}
	rows, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("report search failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("term", term),
			zap.Error(err),
		)
		return nil, err
	}
	if rows == nil {
		rows = []SearchRow{}
	}
	return rows, nil
}

// Summary collapses concurrent reads into one aggregate query. The query
// is detached from the caller that started it, so a disconnecting client
// does not fail the others waiting on the same result; each caller still
// returns early when its own context ends.
func (s *service) Summary(ctx context.Context) (Summary, error) {
	ch := s.sf.DoChan(summaryKey, func() (any, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryQueryTimeout)
		defer cancel()
		return s.repo.Summary(qctx)
	})

	select {
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.logger.Error("report summary failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.Bool("shared", res.Shared),
				zap.Error(res.Err),
			)
			return Summary{}, res.Err
		}
		return res.Val.(Summary), nil
	}
}

func (s *service) SetStatus(ctx context.Context, id int, status string) (personnel.PersonnelResponse, error) {
	return s.status.SetStatus(ctx, id, status)
}
