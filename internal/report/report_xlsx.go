package report

import (
	"context"
	"fmt"

	reporterrors "go-personnel/internal/report/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const SummaryFilename = "Resumen_Personal.xlsx"

// ExportSummaryXLSX writes one sheet per service state listing the roster
// names under a count header.
func (s *service) ExportSummaryXLSX(ctx context.Context) ([]byte, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := summaryWorkbook(summary)
	if err != nil {
		s.logger.Error("build summary workbook failed", zap.Error(err))
		return nil, reporterrors.ErrExportFailed
	}
	return doc, nil
}

func summaryWorkbook(summary Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	groups := []struct {
		sheet string
		group StatusGroup
	}{
		{"Activo", summary.Activo},
		{"Inactivo", summary.Inactivo},
	}
	for _, g := range groups {
		if _, err := f.NewSheet(g.sheet); err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(g.sheet, "A1", &[]any{"Total", g.group.Count}); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(g.sheet, "A3", "Nombre"); err != nil {
			return nil, err
		}
		for i, name := range g.group.Names {
			if err := f.SetCellValue(g.sheet, fmt.Sprintf("A%d", i+4), name); err != nil {
				return nil, err
			}
		}
		if err := f.SetColWidth(g.sheet, "A", "A", 45); err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex("Activo")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
