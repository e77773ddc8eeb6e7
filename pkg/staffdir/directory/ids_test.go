package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

func TestNextRowID(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.NextRowID(), "empty table starts at 1")

	d.Employees = []models.Employee{
		{RowID: 3, Name: "a", Extension: "1000"},
		{RowID: 7, Name: "b", Extension: "1001"},
		{RowID: 2, Name: "c", Extension: "1002"},
	}
	assert.Equal(t, 8, d.NextRowID(), "max existing plus one")

	// Deleting the max row must not reuse its id forever, but the allocator
	// is pure over current state: after deletion the sequence restarts from
	// the new max.
	d.Employees = d.Employees[:2]
	assert.Equal(t, 8, d.NextRowID())
}

func TestNextDeptID(t *testing.T) {
	d := New()
	assert.Equal(t, "1", d.NextDeptID(), "empty table starts at 1")

	d.Departments = []models.Department{
		{DeptID: "2", Name: "IT"},
		{DeptID: "HR-7", Name: "HR"},
		{DeptID: "misc", Name: "Misc"},
	}
	assert.Equal(t, "8", d.NextDeptID(), "numeric portion of non-numeric ids counts")

	d.Departments = []models.Department{{DeptID: "legacy", Name: "Legacy"}}
	assert.Equal(t, "1", d.NextDeptID(), "no parsable ids falls back to 1")
}
