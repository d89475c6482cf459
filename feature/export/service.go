package export

import (
	"context"
	"errors"
	"fmt"

	"partflow-sync/core/sheets"
	"partflow-sync/feature/syncer/records"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service copies the synced tables into an xlsx workbook.
type Service struct {
	provider sheets.Provider
	logger   *zap.Logger
}

// NewService creates an export service.
func NewService(provider sheets.Provider, logger *zap.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Export builds a workbook with one worksheet per table, in sync order. Cells
// are written as stored. A missing tab yields a sheet holding only the current
// header. The caller must Close the returned file.
func (s *Service) Export(ctx context.Context, spreadsheetID string) (*excelize.File, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, schema := range records.Schemas() {
		grid, err := store.FetchTable(ctx, spreadsheetID, schema.Table)
		if errors.Is(err, sheets.ErrTabNotFound) || (err == nil && len(grid) == 0) {
			grid = [][]string{schema.Headers}
		} else if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read %s: %w", schema.Table, err)
		}

		if err := writeSheet(f, i, schema.Table, grid, bold); err != nil {
			f.Close()
			return nil, err
		}
		s.logger.Debug("Exported table",
			zap.String("table", schema.Table),
			zap.Int("rows", len(grid)-1))
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, index int, name string, grid [][]string, headerStyle int) error {
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to name sheet %s: %w", name, err)
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for r, row := range grid {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for c, v := range row {
			values[c] = v
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, r+1, err)
		}
	}

	return f.SetRowStyle(name, 1, 1, headerStyle)
}
