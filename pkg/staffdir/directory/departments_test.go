package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

func TestAddDepartment(t *testing.T) {
	d := New()
	dept, err := d.AddDepartment("Engineering", "builds things")
	require.NoError(t, err)
	assert.Equal(t, "1", dept.DeptID)
	assert.Equal(t, "Engineering", dept.Name)

	_, err = d.AddDepartment("  engineering ", "")
	assert.ErrorIs(t, err, staffdir.ErrDuplicate, "names are unique case-insensitively after trimming")

	_, err = d.AddDepartment("   ", "")
	assert.ErrorIs(t, err, staffdir.ErrValidation)
}

func TestRenameDepartmentCascades(t *testing.T) {
	d := New()
	dept, err := d.AddDepartment("Ops", "")
	require.NoError(t, err)
	d.Employees = []models.Employee{
		{RowID: 1, Name: "John", Extension: "1234", Department: "Ops"},
		{RowID: 2, Name: "Jane", Extension: "1235", Department: "Operations"},
	}

	require.NoError(t, d.RenameDepartment(dept.DeptID, "Platform Ops", "runs things"))
	assert.Equal(t, "Platform Ops", d.Departments[0].Name)
	assert.Equal(t, "runs things", d.Departments[0].Description)
	assert.Equal(t, "Platform Ops", d.Employees[0].Department, "matching rows follow the rename")
	assert.Equal(t, "Operations", d.Employees[1].Department, "only exact matches are repointed")
}

func TestRenameDepartmentCaseChangeOnly(t *testing.T) {
	d := New()
	dept, err := d.AddDepartment("it", "")
	require.NoError(t, err)

	// Changing only the casing must not trip the uniqueness check against
	// the department's own name.
	require.NoError(t, d.RenameDepartment(dept.DeptID, "IT", ""))
	assert.Equal(t, "IT", d.Departments[0].Name)
}

func TestDeleteDepartmentBlanksReferences(t *testing.T) {
	d := New()
	dept, err := d.AddDepartment("HR", "")
	require.NoError(t, err)
	d.Employees = []models.Employee{
		{RowID: 1, Name: "John", Extension: "1234", Department: "HR"},
		{RowID: 2, Name: "Jane", Extension: "1235", Department: "IT"},
	}

	require.NoError(t, d.DeleteDepartment(dept.DeptID))
	assert.Empty(t, d.Departments)
	assert.Len(t, d.Employees, 2, "employees are never deleted with their department")
	assert.Empty(t, d.Employees[0].Department)
	assert.Equal(t, "IT", d.Employees[1].Department)

	assert.ErrorIs(t, d.DeleteDepartment(dept.DeptID), staffdir.ErrNotFound)
}

func TestMergeDepartments(t *testing.T) {
	d := New()
	keep, err := d.AddDepartment("IT", "")
	require.NoError(t, err)
	gone, err := d.AddDepartment("Information Technology", "")
	require.NoError(t, err)
	d.Employees = []models.Employee{
		{RowID: 1, Name: "John", Extension: "1234", Department: "IT"},
		{RowID: 2, Name: "Jane", Extension: "1235", Department: "Information Technology"},
	}

	require.NoError(t, d.MergeDepartments(keep.DeptID, gone.DeptID, "Technology"))
	require.Len(t, d.Departments, 1)
	assert.Equal(t, keep.DeptID, d.Departments[0].DeptID)
	assert.Equal(t, "Technology", d.Departments[0].Name)
	assert.Equal(t, "Merged from: IT, Information Technology", d.Departments[0].Description)
	assert.Equal(t, "Technology", d.Employees[0].Department)
	assert.Equal(t, "Technology", d.Employees[1].Department)
}

func TestMergeDepartmentsSelf(t *testing.T) {
	d := New()
	dept, err := d.AddDepartment("IT", "")
	require.NoError(t, err)
	assert.ErrorIs(t, d.MergeDepartments(dept.DeptID, dept.DeptID, ""), staffdir.ErrValidation)
}

func TestEmployeeCountByDepartment(t *testing.T) {
	d := New()
	d.Employees = []models.Employee{
		{RowID: 1, Name: "a", Extension: "1", Department: "IT"},
		{RowID: 2, Name: "b", Extension: "2", Department: " IT "},
		{RowID: 3, Name: "c", Extension: "3", Department: "HR"},
	}
	assert.Equal(t, 2, d.EmployeeCountByDepartment("IT"))
	assert.Equal(t, 0, d.EmployeeCountByDepartment("Legal"))
}
