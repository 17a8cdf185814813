package ports

// Dataset is a header row plus data rows in fixed column order, ready for
// tabular serialization.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// DatasetWriter serializes a dataset to a tabular wire format (CSV).
type DatasetWriter interface {
	Write(ds Dataset) ([]byte, error)
}

// SheetWriter serializes a dataset to a spreadsheet workbook (XLSX), used
// for the bulk-provisioning credential sheet.
type SheetWriter interface {
	WriteSheet(sheetName string, ds Dataset) ([]byte, error)
}
