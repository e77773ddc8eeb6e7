package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

func exportRows() []models.Employee {
	return []models.Employee{
		{RowID: 1, EmployeeID: "EMP001", Name: "John Doe", Extension: "1234", Department: "IT", Location: "New York", Status: models.StatusActive, LastUpdated: "2024-03-01T00:00:00Z"},
		{RowID: 2, Name: "Jane, Roe", Extension: "1235", Status: models.StatusInactive},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.EmployeeColumns, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "John Doe", records[1][2])
	assert.Equal(t, "Jane, Roe", records[2][2], "commas in values survive quoting")
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "an empty export still carries the header")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, WriteXLSX(path, exportRows()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(models.EmployeeSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.EmployeeColumns, rows[0])
	assert.Equal(t, "John Doe", rows[1][2])
}

func TestWriteTemplateCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplateCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Employee ID", records[0][0])
	assert.NotContains(t, records[0], "Row ID", "internal columns are not importable")
	assert.Equal(t, "John Doe", records[1][1])
}
