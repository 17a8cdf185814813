// Package export implements the tabular serialization ports: CSV for sale
// exports and XLSX workbooks for bulk-provisioned credentials.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/intertech/sales-automation-api/internal/application/ports"
)

// CSVWriter serializes datasets as RFC 4180 CSV.
type CSVWriter struct{}

var _ ports.DatasetWriter = (*CSVWriter)(nil)

func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

func (w *CSVWriter) Write(ds ports.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(ds.Headers); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}
