// Package models defines the two-table data model persisted in the workbook.
package models

// DepartmentSheet is the workbook sheet holding department rows.
const DepartmentSheet = "Departments"

// DepartmentColumns is the fixed, ordered column set of the Departments sheet.
var DepartmentColumns = []string{
	"Dept ID",
	"Department Name",
	"Description",
}

// Department is one row of the Departments sheet. DeptID is string-typed to
// tolerate non-numeric values found in existing workbooks. Name is unique
// case-insensitively.
type Department struct {
	DeptID      string
	Name        string
	Description string
}

// Record returns the persisted cell values in DepartmentColumns order.
func (d Department) Record() []string {
	return []string{d.DeptID, d.Name, d.Description}
}

// DepartmentFromRecord builds a Department from cell values in
// DepartmentColumns order, padding short records with empty values.
func DepartmentFromRecord(rec []string) Department {
	padded := make([]string, len(DepartmentColumns))
	copy(padded, rec)
	return Department{
		DeptID:      padded[0],
		Name:        padded[1],
		Description: padded[2],
	}
}
