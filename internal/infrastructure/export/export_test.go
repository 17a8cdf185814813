package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/infrastructure/export"
)

func TestCSVWriter(t *testing.T) {
	w := export.NewCSVWriter()
	out, err := w.Write(ports.Dataset{
		Headers: []string{"name", "note"},
		Rows: [][]string{
			{"Jane", "plain"},
			{"John", `has "quotes", and commas`},
		},
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "name,note", string(lines[0]))
	assert.Equal(t, "Jane,plain", string(lines[1]))
	assert.Contains(t, string(lines[2]), `"has ""quotes"", and commas"`)
}

func TestXLSXWriter(t *testing.T) {
	w := export.NewXLSXWriter()
	out, err := w.WriteSheet("User List", ports.Dataset{
		Headers: []string{"Name", "Email"},
		Rows: [][]string{
			{"Jane Doe", "janedoe@intertech.com"},
			{"José Álvarez", "josealvarez@intertech.com"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"User List"}, f.GetSheetList())

	rows, err := f.GetRows("User List")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email"}, rows[0])
	assert.Equal(t, []string{"José Álvarez", "josealvarez@intertech.com"}, rows[2])
}
