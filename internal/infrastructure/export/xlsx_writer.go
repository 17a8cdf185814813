package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/intertech/sales-automation-api/internal/application/ports"
)

// XLSXWriter serializes datasets as single-sheet Excel workbooks.
type XLSXWriter struct{}

var _ ports.SheetWriter = (*XLSXWriter)(nil)

func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

func (w *XLSXWriter) WriteSheet(sheetName string, ds ports.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet %q: %w", sheetName, err)
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("removing default sheet: %w", err)
		}
	}

	if err := writeRow(f, sheetName, 1, ds.Headers); err != nil {
		return nil, err
	}
	for i, row := range ds.Rows {
		if err := writeRow(f, sheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("resolving cell for row %d: %w", rowNum, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
