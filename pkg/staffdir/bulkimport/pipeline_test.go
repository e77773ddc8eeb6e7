package bulkimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

func importFixture() *directory.Directory {
	d := directory.New()
	d.Departments = []models.Department{{DeptID: "1", Name: "IT"}}
	d.Employees = []models.Employee{
		{RowID: 1, EmployeeID: "EMP001", Name: "John Doe", Extension: "1234", Department: "IT", Status: models.StatusActive},
	}
	return d
}

func standardTable(rows ...[]string) Table {
	return Table{
		Header: []string{"Employee ID", "Name", "Extension", "Department"},
		Rows:   rows,
	}
}

func TestBuildPreviewCleanAndDuplicate(t *testing.T) {
	d := importFixture()
	table := standardTable(
		[]string{"EMP002", "Jane Roe", "1235", "IT"},
		[]string{"EMP003", "Kim Lee", "1234", "IT"},
	)
	mapping := AutoDetect(table.Header)

	p := BuildPreview(d, table, mapping, nil, nil)
	require.Len(t, p.Clean, 1)
	require.Len(t, p.Duplicates, 1)
	assert.Empty(t, p.Errors)

	assert.Equal(t, 2, p.Clean[0].Line, "line numbers count the header row")
	assert.Equal(t, "Jane Roe", p.Clean[0].Employee.Name)
	assert.Equal(t, 3, p.Duplicates[0].Line)
	assert.Contains(t, p.Duplicates[0].Reasons[0], "extension")
}

func TestBuildPreviewErrors(t *testing.T) {
	d := importFixture()
	table := standardTable(
		[]string{"EMP002", "", "1235", "IT"},
		[]string{"EMP003", "Kim Lee", "", "IT"},
	)

	p := BuildPreview(d, table, AutoDetect(table.Header), nil, nil)
	assert.Empty(t, p.Clean)
	assert.Empty(t, p.Duplicates)
	require.Len(t, p.Errors, 2)
	assert.Equal(t, []string{"missing Name"}, p.Errors[0].Reasons)
	assert.Equal(t, []string{"missing Extension"}, p.Errors[1].Reasons)
}

func TestBuildPreviewDuplicatesWithinBatch(t *testing.T) {
	d := directory.New()
	table := standardTable(
		[]string{"EMP010", "First", "2000", ""},
		[]string{"EMP011", "Second", "2000", ""},
	)

	p := BuildPreview(d, table, AutoDetect(table.Header), nil, nil)
	assert.Len(t, p.Clean, 1)
	require.Len(t, p.Duplicates, 1)
	assert.Equal(t, "Second", p.Duplicates[0].Employee.Name, "accepted rows guard later rows in the same batch")
}

func TestAutoDetectIgnoresCaseAndSpaces(t *testing.T) {
	m := AutoDetect([]string{"employee id", "NAME", "Ext ension", "dept"})
	assert.Equal(t, "employee id", m[FieldEmployeeID])
	assert.Equal(t, "NAME", m[FieldName])
	assert.Equal(t, "Ext ension", m[FieldExtension], "spaces are ignored when matching")
	assert.NotContains(t, m, FieldDepartment, "unrelated headers stay unmapped")
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("employeeid")
	assert.True(t, ok)
	assert.Equal(t, FieldEmployeeID, f)

	_, ok = ParseField("Row ID")
	assert.False(t, ok, "internal id is never importable")
}

func TestMissingDepartments(t *testing.T) {
	d := importFixture()
	table := standardTable(
		[]string{"EMP002", "Jane", "1235", "Sales"},
		[]string{"EMP003", "Kim", "1236", "IT"},
		[]string{"EMP004", "Lee", "1237", "sales"},
		[]string{"EMP005", "Pat", "1238", ""},
	)

	got := MissingDepartments(d, table, AutoDetect(table.Header), nil)
	assert.Equal(t, []string{"Sales", "sales"}, got, "existing names match case-insensitively, values stay verbatim")
}

func TestCommitRequiresDeptResolution(t *testing.T) {
	d := importFixture()
	before := d.Clone()
	table := standardTable([]string{"EMP002", "Jane", "1235", "Sales"})

	_, err := Commit(d, table, AutoDetect(table.Header), nil, nil, nil)
	require.ErrorIs(t, err, staffdir.ErrIncompleteBatch)
	assert.Equal(t, before.Employees, d.Employees, "a gated batch applies nothing")
	assert.Equal(t, before.Departments, d.Departments)
}

func TestCommitCleanAndSkippedDuplicate(t *testing.T) {
	d := importFixture()
	table := standardTable(
		[]string{"EMP002", "Jane Roe", "1235", "IT"},
		[]string{"EMP003", "Kim Lee", "1234", "IT"},
	)

	result, err := Commit(d, table, AutoDetect(table.Header), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1, Skipped: 1}, result)

	require.Len(t, d.Employees, 2)
	added := d.Employees[1]
	assert.Equal(t, 2, added.RowID)
	assert.Equal(t, "Jane Roe", added.Name)
	assert.Equal(t, models.StatusActive, added.Status, "imported rows default to Active")
	assert.NotEmpty(t, added.LastUpdated)
}

func TestCommitImportAsNewOverride(t *testing.T) {
	d := importFixture()
	table := standardTable([]string{"EMP003", "Kim Lee", "1234", "IT"})

	result, err := Commit(d, table, AutoDetect(table.Header), nil, nil, Overrides{
		2: {ImportAsNew: true},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1}, result)
	require.Len(t, d.Employees, 2)
	assert.Equal(t, "1234", d.Employees[1].Extension, "import-as-new keeps the colliding extension")
}

func TestCommitReplaceOverridePreservesRowID(t *testing.T) {
	d := importFixture()
	table := standardTable([]string{"EMP001", "John D. Doe", "9999", "IT"})

	result, err := Commit(d, table, AutoDetect(table.Header), nil, nil, Overrides{
		2: {Replace: true},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Replaced: 1}, result)
	require.Len(t, d.Employees, 1)
	assert.Equal(t, 1, d.Employees[0].RowID, "replace keeps the matched row's internal id")
	assert.Equal(t, "John D. Doe", d.Employees[0].Name)
	assert.Equal(t, "9999", d.Employees[0].Extension)
}

func TestCommitBothFlagsSkips(t *testing.T) {
	d := importFixture()
	table := standardTable([]string{"EMP003", "Kim Lee", "1234", "IT"})

	result, err := Commit(d, table, AutoDetect(table.Header), nil, nil, Overrides{
		2: {ImportAsNew: true, Replace: true},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, result)
	assert.Len(t, d.Employees, 1)
}

func TestCommitCreatesAndMapsDepartments(t *testing.T) {
	d := importFixture()
	table := standardTable(
		[]string{"EMP002", "Jane", "1235", "Sales"},
		[]string{"EMP003", "Kim", "1236", "Ops"},
		[]string{"EMP004", "Lee", "1237", "Temp"},
	)
	actions := DeptActions{
		"Sales": {Kind: DeptCreate, Description: "sells things"},
		"Ops":   {Kind: DeptMap, Target: "IT"},
		"Temp":  {Kind: DeptSkip},
	}

	result, err := Commit(d, table, AutoDetect(table.Header), nil, actions, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, []string{"Sales"}, result.CreatedDepartments)

	require.Len(t, d.Departments, 2)
	assert.Equal(t, "Sales", d.Departments[1].Name)
	assert.Equal(t, "sells things", d.Departments[1].Description)

	byName := map[string]string{}
	for _, e := range d.Employees[1:] {
		byName[e.Name] = e.Department
	}
	assert.Equal(t, "Sales", byName["Jane"])
	assert.Equal(t, "IT", byName["Kim"], "mapped values land on the existing department")
	assert.Empty(t, byName["Lee"], "skipped values import with a blank department")
}

func TestCommitDefaultsOverrideMappedValues(t *testing.T) {
	d := importFixture()
	table := standardTable([]string{"EMP002", "Jane", "1235", "Sales"})
	defaults := Defaults{FieldDepartment: "IT", FieldLocation: "Osaka"}

	result, err := Commit(d, table, AutoDetect(table.Header), defaults, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "IT", d.Employees[1].Department, "a constant default replaces the mapped value")
	assert.Equal(t, "Osaka", d.Employees[1].Location)
}
