package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

func TestLoadCreatesMissingWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")

	dir, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, dir.Employees)
	assert.Empty(t, dir.Departments)

	// The file now exists with both sheets in place.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{models.EmployeeSheet, models.DepartmentSheet}, f.GetSheetList())

	rows, err := f.GetRows(models.EmployeeSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.EmployeeColumns, rows[0])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")

	dir := directory.New()
	dir.Employees = []models.Employee{
		{RowID: 1, EmployeeID: "EMP001", Name: "John Doe", Extension: "1234", Department: "IT", CellNumber: "+1234567890", Location: "New York", Status: models.StatusActive, Notes: "lead", LastUpdated: "2024-03-01T00:00:00Z"},
		{RowID: 2, Name: "Jane Roe", Extension: "1235", Department: "HR", Status: models.StatusInactive, LastUpdated: "2024-04-01T00:00:00Z"},
	}
	dir.Departments = []models.Department{
		{DeptID: "1", Name: "IT", Description: "tech"},
		{DeptID: "2", Name: "HR"},
	}

	require.NoError(t, Save(path, dir))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir.Employees, got.Employees)
	assert.Equal(t, dir.Departments, got.Departments)

	// A second round trip must not change anything.
	require.NoError(t, Save(path, got))
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSaveReplacesAtomically(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "employees.xlsx")

	dir := directory.New()
	require.NoError(t, Save(path, dir))
	dir.Employees = append(dir.Employees, models.Employee{RowID: 1, Name: "John", Extension: "1234"})
	require.NoError(t, Save(path, dir))

	// No temp files linger next to the workbook.
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "employees.xlsx", entries[0].Name())
}

func TestLoadAssignsMissingRowIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	writeRawWorkbook(t, path, models.EmployeeColumns, [][]interface{}{
		{"", "EMP001", "John", "1234", "IT"},
		{"5", "EMP002", "Jane", "1235", "HR"},
		{"", "EMP003", "Kim", "1236", "IT"},
	})

	dir, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dir.Employees, 3)
	assert.Equal(t, 6, dir.Employees[0].RowID, "missing ids continue past the max seen")
	assert.Equal(t, 5, dir.Employees[1].RowID)
	assert.Equal(t, 7, dir.Employees[2].RowID)
}

func TestLoadToleratesColumnOrderAndGaps(t *testing.T) {
	// A hand-edited workbook may reorder columns or drop some entirely:
	// rows are matched by header name, absent columns read as empty.
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	writeRawWorkbook(t, path, []string{"Name", "Row ID", "Extension"}, [][]interface{}{
		{"John Doe", "3", "1234"},
	})

	dir, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dir.Employees, 1)
	got := dir.Employees[0]
	assert.Equal(t, 3, got.RowID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "1234", got.Extension)
	assert.Empty(t, got.Department)
	assert.Empty(t, got.Status)
}

func TestLoadSkipsBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	writeRawWorkbook(t, path, models.EmployeeColumns, [][]interface{}{
		{"1", "", "John", "1234"},
		{"", "", "", ""},
		{"2", "", "Jane", "1235"},
	})

	dir, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, dir.Employees, 2)
}

func TestLoadMissingDepartmentSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	writeRawWorkbook(t, path, models.EmployeeColumns, nil)

	dir, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, dir.Departments, "a workbook without the sheet loads as zero departments")
}

// writeRawWorkbook builds a single-sheet Employees workbook directly with
// excelize, bypassing Save, to simulate externally edited files.
func writeRawWorkbook(t *testing.T, path string, header []string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", models.EmployeeSheet)

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	require.NoError(t, f.SetSheetRow(models.EmployeeSheet, "A1", &cells))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(models.EmployeeSheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}
