package report_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-personnel/internal/personnel"
	personnelerrors "go-personnel/internal/personnel/errors"
	"go-personnel/internal/report"
	reporterrors "go-personnel/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeRepo struct {
	summaryCalls atomic.Int32
	started      chan struct{}
	startOnce    sync.Once
	release      chan struct{}
	summary      report.Summary
	err          error
}

func (f *fakeRepo) Search(ctx context.Context, term string) ([]report.SearchRow, error) {
	return nil, f.err
}

func (f *fakeRepo) Summary(ctx context.Context) (report.Summary, error) {
	f.summaryCalls.Add(1)
	if f.started != nil {
		f.startOnce.Do(func() { close(f.started) })
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return report.Summary{}, ctx.Err()
		}
	}
	return f.summary, f.err
}

type fakeStatus struct {
	calls []string
}

func (f *fakeStatus) SetStatus(ctx context.Context, id int, status string) (personnel.PersonnelResponse, error) {
	f.calls = append(f.calls, status)
	if !personnel.ValidStatus(status) {
		return personnel.PersonnelResponse{}, personnelerrors.ErrInvalidStatus
	}
	return personnel.PersonnelResponse{ID: id, Estatus: status}, nil
}

func TestReportService_Search(t *testing.T) {
	svc := report.NewService(&fakeRepo{}, nil)

	_, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, reporterrors.ErrEmptyQuery)

	rows, err := svc.Search(context.Background(), "ana")
	require.NoError(t, err)
	assert.NotNil(t, rows)
}

func TestReportService_SummaryCollapsesConcurrentReads(t *testing.T) {
	repo := &fakeRepo{release: make(chan struct{}), summary: report.Summary{Activo: report.StatusGroup{Count: 1, Names: []string{"Juan Pérez"}}}}
	svc := report.NewService(repo, nil)

	var wg sync.WaitGroup
	results := make([]report.Summary, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := svc.Summary(context.Background())
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.LessOrEqual(t, repo.summaryCalls.Load(), int32(5))
	for _, s := range results {
		assert.Equal(t, 1, s.Activo.Count)
	}
}

func TestReportService_SummarySurvivesFirstCallerCancel(t *testing.T) {
	repo := &fakeRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
		summary: report.Summary{Inactivo: report.StatusGroup{Count: 2, Names: []string{"Ana Ruiz", "Luis Mora"}}},
	}
	svc := report.NewService(repo, nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Summary(firstCtx)
		firstErr <- err
	}()
	<-repo.started

	type result struct {
		summary report.Summary
		err     error
	}
	second := make(chan result, 1)
	go func() {
		s, err := svc.Summary(context.Background())
		second <- result{s, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(repo.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 2, got.summary.Inactivo.Count)
	assert.Equal(t, int32(1), repo.summaryCalls.Load())
}

func TestReportService_SummaryHonoursOwnDeadline(t *testing.T) {
	repo := &fakeRepo{release: make(chan struct{})}
	defer close(repo.release)
	svc := report.NewService(repo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Summary(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReportService_SetStatusDelegates(t *testing.T) {
	status := &fakeStatus{}
	svc := report.NewService(&fakeRepo{}, status)

	_, err := svc.SetStatus(context.Background(), 3, "Suspendido")
	assert.ErrorIs(t, err, personnelerrors.ErrInvalidStatus)

	p, err := svc.SetStatus(context.Background(), 3, "Inactivo")
	require.NoError(t, err)
	assert.Equal(t, "Inactivo", p.Estatus)
	assert.Equal(t, []string{"Suspendido", "Inactivo"}, status.calls)
}

func TestReportService_ExportSummaryXLSX(t *testing.T) {
	repo := &fakeRepo{summary: report.Summary{
		Activo:   report.StatusGroup{Count: 2, Names: []string{"Ana Álvarez", "Juan Pérez"}},
		Inactivo: report.StatusGroup{Count: 0, Names: []string{}},
	}}
	svc := report.NewService(repo, nil)

	doc, err := svc.ExportSummaryXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Activo", "Inactivo"}, f.GetSheetList())
	rows, err := f.GetRows("Activo")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Total", "2"}, rows[0])
	assert.Equal(t, "Juan Pérez", rows[4][0])
}

func TestReportService_ExportSummaryXLSXPropagatesStoreError(t *testing.T) {
	svc := report.NewService(&fakeRepo{err: errors.New("db down")}, nil)

	_, err := svc.ExportSummaryXLSX(context.Background())

	assert.EqualError(t, err, "db down")
}
