package models

import "strconv"

// Employee status values as persisted in the Status column.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// EmployeeSheet is the workbook sheet holding employee rows.
const EmployeeSheet = "Employees"

// EmployeeColumns is the fixed, ordered column set of the Employees sheet.
var EmployeeColumns = []string{
	"Row ID",
	"Employee ID",
	"Name",
	"Extension",
	"Department",
	"Cell Number",
	"Location",
	"Status",
	"Notes",
	"Last Updated",
}

// Employee is one row of the Employees sheet. RowID is the internal
// identifier, assigned once and never reused. EmployeeID is the optional
// external identifier, unique when non-blank. Department is a weak reference
// by name to the Departments sheet.
type Employee struct {
	RowID       int
	EmployeeID  string
	Name        string
	Extension   string
	Department  string
	CellNumber  string
	Location    string
	Status      string
	Notes       string
	LastUpdated string
}

// Record returns the persisted cell values in EmployeeColumns order.
// A RowID of zero serializes as an empty cell.
func (e Employee) Record() []string {
	rowID := ""
	if e.RowID > 0 {
		rowID = strconv.Itoa(e.RowID)
	}
	return []string{
		rowID,
		e.EmployeeID,
		e.Name,
		e.Extension,
		e.Department,
		e.CellNumber,
		e.Location,
		e.Status,
		e.Notes,
		e.LastUpdated,
	}
}

// EmployeeFromRecord builds an Employee from cell values in EmployeeColumns
// order. Short records are padded with empty values so every row stays
// rectangular. An unparsable Row ID cell yields RowID zero, which the store
// replaces with a fresh identifier on load.
func EmployeeFromRecord(rec []string) Employee {
	padded := make([]string, len(EmployeeColumns))
	copy(padded, rec)
	rowID, _ := strconv.Atoi(padded[0])
	return Employee{
		RowID:       rowID,
		EmployeeID:  padded[1],
		Name:        padded[2],
		Extension:   padded[3],
		Department:  padded[4],
		CellNumber:  padded[5],
		Location:    padded[6],
		Status:      padded[7],
		Notes:       padded[8],
		LastUpdated: padded[9],
	}
}
